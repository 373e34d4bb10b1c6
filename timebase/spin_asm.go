//go:build tinygo && avr

package timebase

import "device"

// Spin runs loops iterations of the sbiw/brne loop, in blocks of at most
// 0xFFFF since the counter is one register pair.
func (Loop) Spin(loops uint32) {
	for loops > 0xFFFF {
		spin16(0xFFFF)
		loops -= 0xFFFF
	}
	if loops != 0 {
		spin16(uint16(loops))
	}
}

// spin16 takes 4*n-1 cycles plus nine for the register save, and must not
// be called with n == 0. r24:r25 is the only pair sbiw can count in besides
// the pointer registers, and inline assembly here cannot declare a clobber,
// so the pair is saved and restored around the loop.
func spin16(n uint16) {
	device.AsmFull(`
		push r24
		push r25
		movw r24, {n}
	1:
		sbiw r24, 1
		brne 1b
		pop r25
		pop r24
	`, map[string]interface{}{
		"n": n,
	})
}
