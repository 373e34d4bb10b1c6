//go:build tinygo && avr

package main

import (
	"device/avr"
	"runtime/interrupt"

	"tinytime/timebase"
)

// TCCR0B clock select and TIMSK bits for timer0.
const (
	cs00  = 1 << 0
	cs01  = 1 << 1
	toie0 = 1 << 1
)

// overflows is the clock's counter, held directly so the handler makes one
// call instead of going through the Clock.
var overflows *timebase.Counter

// startTimer0 runs timer0 in normal mode from the CPU clock divided by
// prescale and routes its overflow to the clock. The runtime keeps its own
// time on the watchdog, so timer0 is free.
func startTimer0(prescale uint32) {
	overflows = clk.Counter()

	var cs uint8
	switch prescale {
	case 1:
		cs = cs00
	case 8:
		cs = cs01
	case 64:
		cs = cs01 | cs00
	}

	interrupt.New(avr.IRQ_TIMER0_OVF, func(interrupt.Interrupt) {
		overflows.Overflow()
	})

	state := interrupt.Disable()
	avr.TCCR0A.Set(0)
	avr.TCNT0.Set(0)
	avr.TCCR0B.Set(cs)
	avr.TIMSK.SetBits(toie0)
	interrupt.Restore(state)
}
