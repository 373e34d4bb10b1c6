package protocol

// CRC16 returns the checksum a frame carries after its '*': the CCITT CRC
// (reflected polynomial 0x8408, initial value 0xFFFF, no final xor) of the
// kind letter and fields, commas included. AppendSample and AppendInfo
// write it as four hex digits; ParseSample and ParseInfo recompute it and
// reject the line with ErrCRC on a mismatch.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, c := range data {
		crc = crc16Update(crc, c)
	}
	return crc
}

// crc16Update folds one byte into crc. It is table-free; a 512-byte table
// would fill the ATtiny85's RAM.
func crc16Update(crc uint16, c byte) uint16 {
	x := c ^ byte(crc)
	x ^= x << 4
	w := uint16(x)
	return (w<<8 | crc>>8) ^ w>>4 ^ w<<3
}
