// Package approx implements the multiply-and-shift approximations used by
// the timebase: a ratio is expressed as Mul + Σ 2^-s for a short list of
// shift amounts, so the runtime needs only one small multiply, a few shifts
// and additions, and no division.
package approx

// PPMScale is one million, the denominator of every ppm figure.
const PPMScale = 1000000

// Scale is one selected rung of a Ladder.
type Scale struct {
	Mul    uint32
	Shifts []uint8
	ErrPPM uint32 // worst-case slow error, rounded up
}

// Apply returns x*Mul + Σ x>>s in 32-bit arithmetic. Each term truncates, so
// the result never exceeds x times the approximated ratio.
func (s Scale) Apply(x uint32) uint32 {
	r := x * s.Mul
	for _, sh := range s.Shifts {
		r += x >> sh
	}
	return r
}

// ScalePPM is the fraction of real time the scale reports, in ppm.
func (s Scale) ScalePPM() uint32 {
	return PPMScale - s.ErrPPM
}

// Real converts a duration counted in real time into the number of units the
// scale reports for it.
func (s Scale) Real(n uint32) uint32 {
	if s.ErrPPM == 0 {
		return n
	}
	return uint32(uint64(n) * uint64(s.ScalePPM()) / PPMScale)
}

// Ladder is a truncated binary expansion of a ratio. Rung i uses the first
// i+First() shifts. Each extra shift strictly reduces the exact error; the
// rounded ErrPPM figures are non-increasing and the last rung is the first to
// reach the best figure.
type Ladder struct {
	Mul    uint32
	Shifts []uint8
	ErrPPM []uint32
}

// First is the number of shifts the loosest rung already uses. A ladder with
// no integer part starts at one shift so that no rung reports constant zero.
func (l Ladder) First() int {
	if l.Mul == 0 && len(l.Shifts) > 0 {
		return 1
	}
	return 0
}

// Rungs returns the number of selectable rungs.
func (l Ladder) Rungs() int {
	return len(l.ErrPPM)
}

// Rung returns rung i, 0 being the loosest.
func (l Ladder) Rung(i int) Scale {
	return Scale{
		Mul:    l.Mul,
		Shifts: l.Shifts[:i+l.First()],
		ErrPPM: l.ErrPPM[i],
	}
}

// Select returns the cheapest rung whose error is within budgetPPM, or the
// most accurate rung when none is.
func (l Ladder) Select(budgetPPM uint32) Scale {
	for i, e := range l.ErrPPM {
		if e <= budgetPPM {
			return l.Rung(i)
		}
	}
	return l.Rung(len(l.ErrPPM) - 1)
}

// Divider turns a microsecond request into a busy-loop iteration count.
type Divider struct {
	Mul    uint32
	Shifts []uint8
	// Sub is the number of iterations the call overhead already accounts
	// for. It is negative when flooring the shift terms loses more
	// iterations than the overhead covers.
	Sub int32
	// MinUs is the smallest request that still runs the loop; anything
	// below returns at once. It is at least 1.
	MinUs uint16
	// OverheadCycles is the modelled cost of a call that runs the loop,
	// excluding the loop itself.
	OverheadCycles uint32
}

// Loops returns the iteration count for us, and false when the request is
// zero or below MinUs.
func (d Divider) Loops(us uint16) (uint32, bool) {
	if us == 0 || us < d.MinUs {
		return 0, false
	}
	x := uint32(us)
	n := x * d.Mul
	for _, sh := range d.Shifts {
		n += x >> sh
	}
	return uint32(int64(n) - int64(d.Sub)), true
}
