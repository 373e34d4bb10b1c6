package protocol

import "strconv"

// Sample is one reading of the device clock.
type Sample struct {
	Seq    uint32
	Millis uint32
	Micros uint32
}

// Info describes the device timebase.
type Info struct {
	CPUHz     uint32
	Prescale  uint32
	MillisPPM uint32
	MicrosPPM uint32
}

// AppendSample appends the line for s to dst. With a dst of capacity
// FrameMax it does not allocate.
func AppendSample(dst []byte, s Sample) []byte {
	return appendFrame(dst, KindSample, s.Seq, s.Millis, s.Micros, 0, 3)
}

// AppendInfo appends the line for i to dst.
func AppendInfo(dst []byte, i Info) []byte {
	return appendFrame(dst, KindInfo, i.CPUHz, i.Prescale, i.MillisPPM, i.MicrosPPM, 4)
}

func appendFrame(dst []byte, kind byte, a, b, c, d uint32, n int) []byte {
	start := len(dst)
	dst = append(dst, kind)
	for i, v := range [4]uint32{a, b, c, d} {
		if i == n {
			break
		}
		dst = append(dst, ',')
		dst = strconv.AppendUint(dst, uint64(v), 10)
	}
	crc := CRC16(dst[start:])
	dst = append(dst, crcSep)
	dst = appendHex16(dst, crc)
	return append(dst, '\n')
}

const hexDigits = "0123456789ABCDEF"

func appendHex16(dst []byte, v uint16) []byte {
	return append(dst, hexDigits[v>>12], hexDigits[v>>8&0xF], hexDigits[v>>4&0xF], hexDigits[v&0xF])
}

// Kind returns the frame kind of line, or 0 for an empty line.
func Kind(line []byte) byte {
	if len(line) == 0 {
		return 0
	}
	return line[0]
}
