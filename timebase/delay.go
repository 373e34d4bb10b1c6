package timebase

import (
	"tinytime/approx"
	"tinytime/internal/errs"
)

// Spinner runs the fixed-cost decrement loop the delay tables are
// calibrated against.
type Spinner interface {
	Spin(loops uint32)
}

// OverheadSpinner is a Spinner that also accounts for the fixed cost of a
// delay call. Cycle-level simulators implement it; hardware pays the cost by
// running the code.
type OverheadSpinner interface {
	Spinner
	Overhead(cycles uint32)
}

// Loop spins on the running processor. On AVR each iteration is an
// sbiw/brne pair of loopCycles; elsewhere it is a plain Go loop with no
// calibrated cost.
type Loop struct{}

// loopCycles is the cost of one AVR iteration: sbiw 2, brne taken 2.
const loopCycles = 4

// Delayer blocks the caller for a requested duration without consulting the
// overflow counter. Interrupts firing during the wait lengthen it; the
// adjusted divider budgets for the overflow handler only.
type Delayer struct {
	div  approx.Divider
	spin Spinner
	// chunk is the number of milliseconds Delay waits per call so that
	// each call is above the divider's floor.
	chunk uint16
}

// NewDelayer binds the divider selected by cfg. A nil spin uses Loop.
func NewDelayer(cfg Config, spin Spinner) (*Delayer, error) {
	cfg, err := cfg.Resolved()
	if err != nil {
		return nil, err
	}
	prescale := uint32(0)
	if cfg.DelayMode == DelayAdjusted {
		prescale = cfg.Prescale
	}
	div, ok := findDivider(cfg.CPUHz, prescale)
	if !ok {
		return nil, errs.Wrapf(ErrUnsupportedFrequency, "delay %s at %d Hz / %d", cfg.DelayMode, cfg.CPUHz, cfg.Prescale)
	}
	if spin == nil {
		spin = Loop{}
	}
	chunk := (uint32(div.MinUs) + 999) / 1000
	if chunk == 0 {
		chunk = 1
	}
	return &Delayer{div: div, spin: spin, chunk: uint16(chunk)}, nil
}

// Divider returns the bound delay constants.
func (d *Delayer) Divider() approx.Divider {
	return d.div
}

// MinDelay returns the shortest request DelayMicroseconds honours. Shorter
// requests return at once.
func (d *Delayer) MinDelay() uint16 {
	return d.div.MinUs
}

// Step returns the granularity of Delay in milliseconds: 1 from 125 kHz
// up, 4 at 32.768 kHz and 8 at 16 kHz.
func (d *Delayer) Step() uint16 {
	return d.chunk
}

// DelayMicroseconds busy-waits for at least us microseconds. Requests below
// the divider's MinUs return immediately.
func (d *Delayer) DelayMicroseconds(us uint16) {
	loops, ok := d.div.Loops(us)
	if !ok {
		return
	}
	if o, ok := d.spin.(OverheadSpinner); ok {
		o.Overhead(d.div.OverheadCycles)
	}
	d.spin.Spin(loops)
}

// Delay busy-waits for at least ms milliseconds, in steps of Step()
// milliseconds, each large enough to clear the divider's floor. The last
// step is rounded up rather than dropped, so Delay overshoots by less than
// one step plus the per-call overhead: Delay(1) waits 8 ms at 16 kHz.
func (d *Delayer) Delay(ms uint16) {
	step := d.chunk * 1000
	for ms >= d.chunk {
		d.DelayMicroseconds(step)
		ms -= d.chunk
	}
	if ms > 0 {
		d.DelayMicroseconds(step)
	}
}
