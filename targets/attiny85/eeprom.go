//go:build tinygo && avr

package main

import (
	"machine"
	"strconv"

	"tinygo.org/x/drivers/at24cx"

	"tinytime/softi2c"
	"tinytime/softserial"
)

// An AT24C32 on the USI pins keeps a boot counter, so restarts show up in
// the host log.
const (
	sdaPin = machine.PB0
	sclPin = machine.PB2

	bootCountAddr = 0x0000
)

// openDrain drives a pin low as an output and releases it to the external
// pull-up as an input.
type openDrain machine.Pin

func (p openDrain) Release() {
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinInput})
}

func (p openDrain) Low() {
	machine.Pin(p).Low()
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (p openDrain) Get() bool {
	return machine.Pin(p).Get()
}

// countBoot increments the EEPROM boot counter and prints it. A missing
// EEPROM is reported and otherwise ignored.
func countBoot(out *softserial.Writer) {
	bus := softi2c.New(openDrain(sclPin), openDrain(sdaPin), clk, softi2c.Config{})
	eeprom := at24cx.New(bus)
	eeprom.Configure(at24cx.Config{})

	n, err := eeprom.ReadByte(bootCountAddr)
	if err != nil {
		out.Println("eeprom: " + err.Error())
		return
	}
	n++
	if err := eeprom.WriteByte(bootCountAddr, n); err != nil {
		out.Println("eeprom: " + err.Error())
		return
	}
	out.Println("boot " + strconv.Itoa(int(n)))
}
