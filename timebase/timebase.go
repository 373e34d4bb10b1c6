// Package timebase derives millis(), micros() and calibrated busy-wait
// delays from an 8-bit timer that overflows every 256 timer ticks.
//
// The overflow handler only increments a 32-bit counter. Elapsed time is
// computed on demand as ovrf*K + Σ ovrf>>s, with K and the shift list taken
// from generated tables for the configured tick rate and accuracy budget.
// Every table entry under-reports: device time never runs ahead of real
// time.
package timebase

//go:generate go run ../cmd/timebasegen -config timebasegen.yaml -out tables_gen.go
//go:generate go run ../cmd/timebasegen -config timebasegen.yaml -firmware -out tables_firmware_gen.go

import (
	"errors"
	"strconv"

	"tinytime/approx"
	"tinytime/internal/errs"
)

var (
	ErrUnsupportedFrequency = errors.New("unsupported cpu frequency / prescale combination")
	ErrBadPrescale          = errors.New("prescale must be 1, 8 or 64")
	ErrBadAccuracy          = errors.New("accuracy tolerance out of range")
	ErrBadDelayMode         = errors.New("interrupt-adjusted delay needs the timebase interrupt")
	ErrTimebaseDisabled     = errors.New("timebase disabled")
)

// LoosestPPM is the default tolerance and selects the cheapest rung.
const LoosestPPM = approx.PPMScale

// Tolerance is a permitted slow error in parts per million. The zero value
// is unset.
type Tolerance struct {
	ppm uint32
	set bool
}

// PPM returns a tolerance of v parts per million. PPM(0) asks for the most
// accurate rung available.
func PPM(v uint32) Tolerance {
	return Tolerance{ppm: v, set: true}
}

// Value returns the tolerance and whether it was set.
func (t Tolerance) Value() (uint32, bool) {
	return t.ppm, t.set
}

// DelayMode picks which busy-wait calibration DelayMicroseconds is bound to.
type DelayMode uint8

const (
	// DelayAuto uses the interrupt-adjusted delay when the timebase is on
	// and the plain one otherwise.
	DelayAuto DelayMode = iota
	// DelayPlain ignores interrupts firing during the wait.
	DelayPlain
	// DelayAdjusted compensates for the overflow handler firing at its
	// nominal rate.
	DelayAdjusted
)

func (m DelayMode) String() string {
	switch m {
	case DelayAuto:
		return "auto"
	case DelayPlain:
		return "plain"
	case DelayAdjusted:
		return "adjusted"
	default:
		return "DelayMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Config is the build configuration of the timebase. It is resolved once by
// NewClock or NewDelayer and never changes afterwards.
type Config struct {
	CPUHz uint32
	// Prescale divides CPUHz to give the timer tick rate. Zero picks the
	// board default for the CPU frequency.
	Prescale uint32
	Millis   Tolerance
	Micros   Tolerance
	// NoMillis builds without the overflow interrupt: only delays exist.
	NoMillis  bool
	DelayMode DelayMode
}

// DefaultPrescale is the prescale used when Config.Prescale is zero: the
// largest tick period that still gives about a millisecond per overflow.
func DefaultPrescale(cpuHz uint32) uint32 {
	switch {
	case cpuHz > 16000000:
		return 64
	case cpuHz > 2000000:
		return 8
	default:
		return 1
	}
}

// Resolved returns the configuration with defaults filled in, or an error
// when no generated table serves it.
func (c Config) Resolved() (Config, error) {
	if c.Prescale == 0 {
		c.Prescale = DefaultPrescale(c.CPUHz)
	}
	switch c.Prescale {
	case 1, 8, 64:
	default:
		return c, errs.Wrapf(ErrBadPrescale, "prescale %d", c.Prescale)
	}

	ms, msSet := c.Millis.Value()
	us, usSet := c.Micros.Value()
	switch {
	case !msSet && usSet:
		ms = us
	case !msSet:
		ms = LoosestPPM
	}
	if !usSet {
		us = ms
	}
	if ms > LoosestPPM || us > LoosestPPM {
		return c, errs.Wrapf(ErrBadAccuracy, "millis %d ppm, micros %d ppm", ms, us)
	}
	c.Millis, c.Micros = PPM(ms), PPM(us)

	if c.DelayMode == DelayAuto {
		c.DelayMode = DelayAdjusted
		if c.NoMillis {
			c.DelayMode = DelayPlain
		}
	}
	if c.NoMillis && c.DelayMode == DelayAdjusted {
		return c, ErrBadDelayMode
	}

	if _, ok := findDivider(c.CPUHz, 0); !ok {
		return c, errs.Wrapf(ErrUnsupportedFrequency, "%d Hz", c.CPUHz)
	}
	if !c.NoMillis {
		if _, ok := c.TickHz(); !ok {
			return c, errs.Wrapf(ErrUnsupportedFrequency, "%d Hz / %d", c.CPUHz, c.Prescale)
		}
	}
	return c, nil
}

// TickHz returns the timer tick rate and whether the tables support it.
func (c Config) TickHz() (uint32, bool) {
	if c.Prescale == 0 || c.CPUHz%c.Prescale != 0 {
		return 0, false
	}
	hz := c.CPUHz / c.Prescale
	_, ok := findLadders(hz)
	return hz, ok
}
