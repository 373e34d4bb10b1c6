// Package softi2c is an I2C controller bit-banged on two open-drain lines,
// for parts without a TWI peripheral. A Bus satisfies drivers.I2C, so the
// tinygo.org/x/drivers device drivers run on it unchanged.
package softi2c

import (
	"errors"

	"tinytime/internal/errs"
)

var (
	ErrNack     = errors.New("target did not acknowledge")
	ErrBusStuck = errors.New("bus line held low")
	ErrAddress  = errors.New("address is not 7-bit")
)

const (
	DefaultFrequency = 100000
	// DefaultStretchUs bounds how long a target may hold SCL low.
	DefaultStretchUs = 25000
)

// Line is one open-drain bus line: the controller either pulls it low or
// releases it to the pull-up, and reads back the wired level.
type Line interface {
	Release()
	Low()
	Get() bool
}

// Delayer waits in microseconds, usually a *timebase.Delayer.
type Delayer interface {
	DelayMicroseconds(us uint16)
}

// FloorDelayer is a Delayer whose shorter requests return at once.
// *timebase.Delayer and *timebase.Clock implement it; New never times the
// bus below MinDelay.
type FloorDelayer interface {
	Delayer
	MinDelay() uint16
}

type Config struct {
	// Frequency is the SCL rate in Hz, DefaultFrequency when zero.
	Frequency uint32
	// StretchUs is the clock stretching limit, DefaultStretchUs when zero.
	StretchUs uint32
}

// Bus is a single-controller I2C bus. It is not safe for concurrent use.
type Bus struct {
	scl, sda Line
	delay    Delayer
	half     uint16
	polls    uint32
}

// New releases both lines and returns a bus timed by d. The half period is
// raised to d's floor when d is a FloorDelayer, which lowers the SCL rate
// below cfg.Frequency on slow clocks. The stretch limit counts polls of
// the resulting half period.
func New(scl, sda Line, d Delayer, cfg Config) *Bus {
	if cfg.Frequency == 0 {
		cfg.Frequency = DefaultFrequency
	}
	if cfg.StretchUs == 0 {
		cfg.StretchUs = DefaultStretchUs
	}
	half := 500000 / cfg.Frequency
	if half == 0 {
		half = 1
	}
	if f, ok := d.(FloorDelayer); ok && half < uint32(f.MinDelay()) {
		half = uint32(f.MinDelay())
	}
	if half > 0xFFFF {
		half = 0xFFFF
	}
	b := &Bus{
		scl:   scl,
		sda:   sda,
		delay: d,
		half:  uint16(half),
		polls: cfg.StretchUs/half + 1,
	}
	scl.Release()
	sda.Release()
	return b
}

// HalfPeriod returns the SCL half period in microseconds.
func (b *Bus) HalfPeriod() uint16 {
	return b.half
}

// Tx writes w to the target at addr, then reads len(r) bytes after a
// repeated start. With both empty it only checks that the address
// acknowledges.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return errs.Wrapf(ErrAddress, "%#x", addr)
	}
	err := b.tx(uint8(addr), w, r)
	if serr := b.stop(); err == nil {
		err = serr
	}
	return err
}

func (b *Bus) tx(addr uint8, w, r []byte) error {
	if len(w) > 0 || len(r) == 0 {
		if err := b.start(); err != nil {
			return err
		}
		if err := b.writeByte(addr << 1); err != nil {
			return errs.Wrapf(err, "address %#x", addr)
		}
		for i, c := range w {
			if err := b.writeByte(c); err != nil {
				return errs.Wrapf(err, "address %#x byte %d", addr, i)
			}
		}
	}
	if len(r) == 0 {
		return nil
	}

	if err := b.start(); err != nil {
		return err
	}
	if err := b.writeByte(addr<<1 | 1); err != nil {
		return errs.Wrapf(err, "address %#x read", addr)
	}
	for i := range r {
		c, err := b.readByte(i < len(r)-1)
		if err != nil {
			return err
		}
		r[i] = c
	}
	return nil
}

func (b *Bus) wait() {
	b.delay.DelayMicroseconds(b.half)
}

// sclHigh releases SCL and waits out clock stretching.
func (b *Bus) sclHigh() error {
	b.scl.Release()
	for i := uint32(0); !b.scl.Get(); i++ {
		if i >= b.polls {
			return errs.Wrapf(ErrBusStuck, "scl")
		}
		b.wait()
	}
	b.wait()
	return nil
}

// start issues a start condition, or a repeated start mid-transaction.
func (b *Bus) start() error {
	b.sda.Release()
	b.wait()
	if err := b.sclHigh(); err != nil {
		return err
	}
	if !b.sda.Get() {
		return errs.Wrapf(ErrBusStuck, "sda")
	}
	b.sda.Low()
	b.wait()
	b.scl.Low()
	return nil
}

func (b *Bus) stop() error {
	b.sda.Low()
	b.wait()
	err := b.sclHigh()
	b.sda.Release()
	b.wait()
	return err
}

func (b *Bus) writeBit(high bool) error {
	if high {
		b.sda.Release()
	} else {
		b.sda.Low()
	}
	b.wait()
	if err := b.sclHigh(); err != nil {
		return err
	}
	b.scl.Low()
	return nil
}

func (b *Bus) readBit() (bool, error) {
	b.sda.Release()
	b.wait()
	if err := b.sclHigh(); err != nil {
		return false, err
	}
	v := b.sda.Get()
	b.scl.Low()
	return v, nil
}

// writeByte sends c MSB first and checks the target's acknowledge.
func (b *Bus) writeByte(c byte) error {
	for i := 0; i < 8; i++ {
		if err := b.writeBit(c&0x80 != 0); err != nil {
			return err
		}
		c <<= 1
	}
	nack, err := b.readBit()
	if err != nil {
		return err
	}
	if nack {
		return ErrNack
	}
	return nil
}

// readByte clocks in one byte and acknowledges it when more follow.
func (b *Bus) readByte(ack bool) (byte, error) {
	var c byte
	for i := 0; i < 8; i++ {
		v, err := b.readBit()
		if err != nil {
			return 0, err
		}
		c <<= 1
		if v {
			c |= 1
		}
	}
	return c, b.writeBit(!ack)
}
