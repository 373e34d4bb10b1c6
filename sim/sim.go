// Package sim is a cycle-level model of an ATtiny running the timebase:
// timer0 counting CPU cycles through the prescaler, an overflow interrupt
// every 256 timer ticks, and the global interrupt flag with the single
// pending bit the hardware latches while interrupts are masked.
//
// A CPU implements timebase.Interrupts and timebase.OverheadSpinner, so a
// Clock built on it reads and waits in simulated time.
package sim

import (
	"tinytime/timebase"
)

// Config describes the simulated part.
type Config struct {
	CPUHz    uint32
	Prescale uint32
	// ISRCycles and LoopCycles default to the generated table profile.
	ISRCycles  uint32
	LoopCycles uint32
}

// CPU is the simulated processor. It is not safe for concurrent use; the
// target has one thread of control.
type CPU struct {
	cfg     Config
	period  uint64
	cycles  uint64
	next    uint64
	enabled bool
	pending bool
	isr     func()
	marks   uint64
	fired   uint64
	lost    uint64
}

// New returns a CPU at cycle 0 with interrupts enabled.
func New(cfg Config) *CPU {
	p := timebase.TableProfile()
	if cfg.ISRCycles == 0 {
		cfg.ISRCycles = p.ISRCycles
	}
	if cfg.LoopCycles == 0 {
		cfg.LoopCycles = p.LoopCycles
	}
	if cfg.Prescale == 0 {
		cfg.Prescale = timebase.DefaultPrescale(cfg.CPUHz)
	}
	period := uint64(256) * uint64(cfg.Prescale)
	return &CPU{
		cfg:     cfg,
		period:  period,
		next:    period,
		enabled: true,
	}
}

// Attach sets the overflow handler body, usually Clock.Overflow.
func (c *CPU) Attach(isr func()) {
	c.isr = isr
}

// Config returns the simulated part's configuration.
func (c *CPU) Config() Config {
	return c.cfg
}

// Disable clears the global interrupt flag and returns the previous one.
func (c *CPU) Disable() timebase.State {
	var s timebase.State
	if c.enabled {
		s = 1
	}
	c.enabled = false
	return s
}

// Restore puts back a saved flag, delivering a latched overflow if that
// re-enables interrupts.
func (c *CPU) Restore(s timebase.State) {
	c.enabled = s != 0
	if c.enabled && c.pending {
		c.pending = false
		c.fire()
		c.settle()
	}
}

// Enabled reports the global interrupt flag.
func (c *CPU) Enabled() bool {
	return c.enabled
}

// Advance runs n cycles of straight-line code, taking every overflow that
// falls due.
func (c *CPU) Advance(n uint64) {
	c.cycles += n
	c.settle()
}

// AdvanceOverflows runs until the timer has overflowed n more times.
func (c *CPU) AdvanceOverflows(n uint64) {
	target := c.marks + n
	for c.marks < target {
		c.Advance(c.next - c.cycles)
	}
}

// RaiseOverflow makes the timer overflow right now, regardless of the
// schedule. Tests use it to land an overflow in a read window.
func (c *CPU) RaiseOverflow() {
	if c.enabled {
		c.fire()
		return
	}
	if c.pending {
		c.lost++
	}
	c.pending = true
}

// Spin runs loops iterations of the calibrated busy loop.
func (c *CPU) Spin(loops uint32) {
	c.Advance(uint64(loops) * uint64(c.cfg.LoopCycles))
}

// Overhead runs the fixed part of a delay call.
func (c *CPU) Overhead(cycles uint32) {
	c.Advance(uint64(cycles))
}

// Cycles returns the CPU cycles elapsed since reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Overflows returns how many times the timer has overflowed.
func (c *CPU) Overflows() uint64 {
	return c.marks
}

// Fired returns how many times the overflow handler ran.
func (c *CPU) Fired() uint64 {
	return c.fired
}

// Lost returns how many overflows were dropped because one was already
// pending while interrupts were masked.
func (c *CPU) Lost() uint64 {
	return c.lost
}

// RealMicros and RealMillis return true elapsed time, truncated.
func (c *CPU) RealMicros() uint64 {
	return c.cycles * 1000000 / uint64(c.cfg.CPUHz)
}

func (c *CPU) RealMillis() uint64 {
	return c.cycles * 1000 / uint64(c.cfg.CPUHz)
}

func (c *CPU) settle() {
	for c.cycles >= c.next {
		c.next += c.period
		c.marks++
		if c.enabled {
			c.fire()
			continue
		}
		if c.pending {
			c.lost++
		}
		c.pending = true
	}
}

// fire runs the handler with interrupts masked, as the hardware does on
// entry, and charges its cycles.
func (c *CPU) fire() {
	c.fired++
	c.enabled = false
	if c.isr != nil {
		c.isr()
	}
	c.cycles += uint64(c.cfg.ISRCycles)
	c.enabled = true
}
