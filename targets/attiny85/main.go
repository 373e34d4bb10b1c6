//go:build tinygo && avr

// Firmware for an ATtiny85 that reports its timebase over a bit-banged TX
// line: one info frame at boot, then one sample frame per real second.
package main

import (
	"device/avr"
	"machine"

	"tinytime/protocol"
	"tinytime/softserial"
	"tinytime/timebase"
)

// Build configuration. The clock, prescale and budgets must match the
// firmware section of timebase/timebasegen.yaml: the image links only the
// table entries generated for them, and NewClock fails on anything else.
const (
	// millisPPM and microsPPM are the accepted slow error; the cheapest
	// rung within them is selected.
	millisPPM = 1000
	microsPPM = timebase.LoosestPPM

	// prescale keeps the overflow period above one serial frame.
	prescale = 64

	txPin  = machine.PB3
	txMask = 1 << 3
	// baud is the host monitor's default. At 8 MHz a bit is 833 cycles, so
	// an error of 25 cycles in txOverheadCycles stays within tolerance.
	baud = 9600
	// txOverheadCycles is the bit path outside the delay loop as compiled:
	// the byte loop, two interface calls, the PORTB write and the entry
	// into the sbiw loop. Recheck it on a logic analyser after a compiler
	// upgrade.
	txOverheadCycles = 60

	// samplePeriod is the real time between sample frames, in ms.
	samplePeriod = 1000
)

var clk *timebase.Clock

func main() {
	cpuHz := machine.CPUFrequency()

	txPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	out, err := softserial.New(txLine{}, nil, nil, softserial.Config{
		CPUHz:          cpuHz,
		Baud:           baud,
		OverheadCycles: txOverheadCycles,
	})
	if err != nil {
		halt()
	}
	timebase.SetDebugWriter(out.Println)

	clk = timebase.MustNewClock(timebase.Config{
		CPUHz:    cpuHz,
		Prescale: prescale,
		Millis:   timebase.PPM(millisPPM),
		Micros:   timebase.PPM(microsPPM),
	}, nil, nil)
	// Each byte goes out with interrupts masked, and only one overflow can
	// be pending meanwhile.
	if 10*out.BitCycles() >= 256*prescale {
		out.Println("serial frame outlasts the overflow period")
		halt()
	}
	startTimer0(prescale)

	countBoot(out)

	buf := make([]byte, 0, protocol.FrameMax)
	buf = protocol.AppendInfo(buf, protocol.Info{
		CPUHz:     cpuHz,
		Prescale:  prescale,
		MillisPPM: clk.MillisScale().ErrPPM,
		MicrosPPM: clk.MicrosScale().ErrPPM,
	})
	out.Write(buf)

	wait := clk.RealMillis(samplePeriod)
	for seq := uint32(0); ; seq++ {
		start := clk.Millis()
		for clk.Millis()-start < wait {
		}
		buf = protocol.AppendSample(buf[:0], protocol.Sample{
			Seq:    seq,
			Millis: clk.Millis(),
			Micros: clk.Micros(),
		})
		out.Write(buf)
	}
}

// txLine drives txPin through PORTB directly; machine.Pin.Set resolves the
// port on every call, which costs more than the bit budget allows.
type txLine struct{}

func (txLine) Set(high bool) {
	if high {
		avr.PORTB.SetBits(txMask)
	} else {
		avr.PORTB.ClearBits(txMask)
	}
}

func halt() {
	for {
	}
}
