//go:build !tinygo

package protocol

import (
	"errors"
	"fmt"
	"strconv"
)

// Parsing runs on the host only; the device just appends frames.

var (
	ErrFrame = errors.New("malformed frame")
	ErrCRC   = errors.New("frame checksum mismatch")
	ErrKind  = errors.New("unexpected frame kind")
)

// ParseSample decodes a sample line. A trailing "\n" or "\r\n" is optional.
func ParseSample(line []byte) (Sample, error) {
	var v [4]uint32
	if err := parseFrame(line, KindSample, v[:3]); err != nil {
		return Sample{}, err
	}
	return Sample{Seq: v[0], Millis: v[1], Micros: v[2]}, nil
}

// ParseInfo decodes an info line.
func ParseInfo(line []byte) (Info, error) {
	var v [4]uint32
	if err := parseFrame(line, KindInfo, v[:]); err != nil {
		return Info{}, err
	}
	return Info{CPUHz: v[0], Prescale: v[1], MillisPPM: v[2], MicrosPPM: v[3]}, nil
}

func parseFrame(line []byte, kind byte, out []uint32) error {
	line = trimEOL(line)
	sep := -1
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == crcSep {
			sep = i
			break
		}
	}
	if sep < 1 || len(line)-sep-1 != 4 {
		return fmt.Errorf("%q: %w", line, ErrFrame)
	}
	if line[0] != kind {
		return fmt.Errorf("%q: got %q, want %q: %w", line, line[0], kind, ErrKind)
	}
	want, err := strconv.ParseUint(string(line[sep+1:]), 16, 16)
	if err != nil {
		return fmt.Errorf("%q: checksum: %w", line, ErrFrame)
	}
	body := line[:sep]
	if got := CRC16(body); uint64(got) != want {
		return fmt.Errorf("%q: computed %04X: %w", line, got, ErrCRC)
	}

	rest := body[1:]
	for i := range out {
		if len(rest) == 0 || rest[0] != ',' {
			return fmt.Errorf("%q: field %d: %w", line, i, ErrFrame)
		}
		rest = rest[1:]
		end := 0
		for end < len(rest) && rest[end] != ',' {
			end++
		}
		v, err := strconv.ParseUint(string(rest[:end]), 10, 32)
		if err != nil {
			return fmt.Errorf("%q: field %d: %w", line, i, ErrFrame)
		}
		out[i] = uint32(v)
		rest = rest[end:]
	}
	if len(rest) != 0 {
		return fmt.Errorf("%q: trailing fields: %w", line, ErrFrame)
	}
	return nil
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
