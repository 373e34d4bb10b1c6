package timebase

import (
	"strconv"

	"tinytime/approx"
)

// Clock is the running timebase: the overflow counter, the scales selected
// for the configured accuracy, and the delay bound to the configuration.
type Clock struct {
	*Delayer

	cfg    Config
	irq    Interrupts
	ovf    *Counter
	millis approx.Scale
	micros approx.Scale
}

// NewClock resolves cfg and selects its scales. It fails for configurations
// the generated tables do not cover and when cfg.NoMillis is set. Nil irq
// and spin use the running CPU.
func NewClock(cfg Config, irq Interrupts, spin Spinner) (*Clock, error) {
	cfg, err := cfg.Resolved()
	if err != nil {
		return nil, err
	}
	if cfg.NoMillis {
		return nil, ErrTimebaseDisabled
	}
	if irq == nil {
		irq = CPU{}
	}
	d, err := NewDelayer(cfg, spin)
	if err != nil {
		return nil, err
	}

	tickHz, _ := cfg.TickHz()
	t, _ := findLadders(tickHz)
	msPPM, _ := cfg.Millis.Value()
	usPPM, _ := cfg.Micros.Value()
	c := &Clock{
		Delayer: d,
		cfg:     cfg,
		irq:     irq,
		ovf:     NewCounter(irq),
		millis:  t.Millis.Select(msPPM),
		micros:  t.Micros.Select(usPPM),
	}
	debugLine("timebase: " + strconv.FormatUint(uint64(tickHz), 10) + " Hz tick, millis " +
		strconv.FormatUint(uint64(c.millis.ErrPPM), 10) + " ppm, micros " +
		strconv.FormatUint(uint64(c.micros.ErrPPM), 10) + " ppm, delay " + cfg.DelayMode.String())
	return c, nil
}

// MustNewClock is NewClock for firmware init, where a bad configuration is
// a build mistake.
func MustNewClock(cfg Config, irq Interrupts, spin Spinner) *Clock {
	c, err := NewClock(cfg, irq, spin)
	if err != nil {
		panic("timebase: " + err.Error())
	}
	return c
}

// Config returns the resolved configuration.
func (c *Clock) Config() Config {
	return c.cfg
}

// Counter returns the overflow counter.
func (c *Clock) Counter() *Counter {
	return c.ovf
}

// Overflow is the timer overflow handler. It must not call back into the
// clock.
func (c *Clock) Overflow() {
	c.ovf.Overflow()
}

// MillisScale and MicrosScale return the selected rungs.
func (c *Clock) MillisScale() approx.Scale { return c.millis }
func (c *Clock) MicrosScale() approx.Scale { return c.micros }

// Millis returns the milliseconds elapsed since boot, never ahead of real
// time. It wraps with the overflow counter.
func (c *Clock) Millis() uint32 {
	state := c.irq.Disable()
	defer c.irq.Restore(state)
	return c.millis.Apply(c.ovf.read())
}

// Micros returns the microseconds elapsed since boot, never ahead of real
// time.
func (c *Clock) Micros() uint32 {
	state := c.irq.Disable()
	defer c.irq.Restore(state)
	return c.micros.Apply(c.ovf.read())
}

// RealMillis returns how many Millis units pass in n real milliseconds,
// for waits such as
//
//	start := clk.Millis()
//	for clk.Millis()-start < clk.RealMillis(1000) {
//	}
func (c *Clock) RealMillis(n uint32) uint32 {
	return c.millis.Real(n)
}

// RealMicros is RealMillis for Micros.
func (c *Clock) RealMicros(n uint32) uint32 {
	return c.micros.Real(n)
}
