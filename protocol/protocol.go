// Package protocol frames the timebase reports a device prints on its
// serial line. Each report is one line of text:
//
//	T,<seq>,<millis>,<micros>*<crc>\n
//	I,<cpu hz>,<prescale>,<millis ppm>,<micros ppm>*<crc>\n
//
// where <crc> is CRC16 over everything before the '*', in four upper-case
// hex digits. Sample lines (T) carry the device clock; the info line (I) is
// sent once at boot with the selected error bounds.
package protocol

const (
	KindSample = 'T'
	KindInfo   = 'I'

	// FrameMax bounds one line: kind, four 10-digit fields, separators,
	// checksum and newline.
	FrameMax = 1 + 4*11 + 5 + 2

	crcSep = '*'
)
