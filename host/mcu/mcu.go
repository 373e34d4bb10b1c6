// Package mcu reads timebase reports from a device's serial line.
package mcu

import (
	"errors"
	"fmt"
	"io"
	"time"

	"tinytime/host/serial"
	"tinytime/protocol"
)

// ErrTimeout is returned when the port delivers nothing within its read
// timeout.
var ErrTimeout = errors.New("no data from device")

// Frame is one report, stamped with the host time its last byte arrived.
type Frame struct {
	At     time.Time
	Kind   byte
	Sample protocol.Sample
	Info   protocol.Info
}

// MCU represents a connection to a device printing timebase reports.
type MCU struct {
	port  serial.Port
	lines *protocol.LineBuffer
	chunk []byte
	now   func() time.Time

	info *protocol.Info

	// BadFrames counts report lines that failed to parse. Other counts
	// lines that are not reports at all, such as debug output.
	BadFrames int
	Other     int
}

// New reads reports from an open port.
func New(port serial.Port) *MCU {
	return &MCU{
		port:  port,
		lines: protocol.NewLineBuffer(4 * protocol.FrameMax),
		chunk: make([]byte, protocol.FrameMax),
		now:   time.Now,
	}
}

// Connect opens the port described by cfg and discards whatever it had
// buffered, so the first frame is fresh.
func Connect(cfg *serial.Config) (*MCU, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to flush serial port: %w", err)
	}
	return New(port), nil
}

// Close closes the connection to the device.
func (m *MCU) Close() error {
	return m.port.Close()
}

// SetClock replaces the host clock frames are stamped with, for replaying
// recorded or simulated streams.
func (m *MCU) SetClock(now func() time.Time) {
	m.now = now
}

// Info returns the last info frame seen, or nil.
func (m *MCU) Info() *protocol.Info {
	return m.info
}

// Dropped returns the number of bytes discarded while resynchronizing.
func (m *MCU) Dropped() int {
	return m.lines.Dropped
}

// Next returns the next well-formed frame. Malformed lines are counted
// and skipped.
func (m *MCU) Next() (Frame, error) {
	for {
		if line, ok := m.lines.NextLine(); ok {
			if f, ok := m.decode(line); ok {
				return f, nil
			}
			continue
		}
		n, err := m.port.Read(m.chunk)
		if n > 0 {
			m.lines.Write(m.chunk[:n])
			continue
		}
		if err == nil || errors.Is(err, io.EOF) {
			return Frame{}, ErrTimeout
		}
		return Frame{}, fmt.Errorf("read: %w", err)
	}
}

func (m *MCU) decode(line []byte) (Frame, bool) {
	f := Frame{At: m.now(), Kind: protocol.Kind(line)}
	var err error
	switch f.Kind {
	case protocol.KindSample:
		f.Sample, err = protocol.ParseSample(line)
	case protocol.KindInfo:
		f.Info, err = protocol.ParseInfo(line)
		if err == nil {
			info := f.Info
			m.info = &info
		}
	default:
		m.Other++
		return Frame{}, false
	}
	if err != nil {
		m.BadFrames++
		return Frame{}, false
	}
	return f, true
}
