// Package serial opens the host side of a device's TX line.
package serial

import (
	"io"
)

// Port is a serial port as the drift monitor uses it. Tests substitute an
// in-memory reader.
type Port interface {
	io.ReadWriteCloser

	// Flush discards bytes received but not yet read, so monitoring starts
	// on fresh samples.
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud must match the device's softserial rate.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns settings for device at baud, with a read timeout
// short enough to notice a silent device.
func DefaultConfig(device string, baud int) *Config {
	return &Config{
		Device:      device,
		Baud:        baud,
		ReadTimeout: 500,
	}
}
