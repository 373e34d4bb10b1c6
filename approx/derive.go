//go:build !tinygo

package approx

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrZeroRatio   = errors.New("ratio must be positive")
	ErrISRTooSlow  = errors.New("isr cost exceeds the overflow period")
	ErrNoLoopRange = errors.New("no request in range runs the delay loop")
)

// DeriveLadder expands num/den as Mul + Σ 2^-s, truncating at maxShift, and
// records the error of every rung. Truncation only drops weight, so every
// rung under-reports.
func DeriveLadder(num, den uint64, maxShift uint) (Ladder, error) {
	if num == 0 || den == 0 {
		return Ladder{}, ErrZeroRatio
	}
	n := new(big.Int).SetUint64(num)
	d := new(big.Int).SetUint64(den)

	k, rem := new(big.Int).QuoRem(n, d, new(big.Int))
	l := Ladder{Mul: uint32(k.Uint64())}

	r := new(big.Int).Lsh(rem, maxShift)
	for s := uint(1); s <= maxShift; s++ {
		unit := new(big.Int).Lsh(d, maxShift-s)
		if r.Cmp(unit) >= 0 {
			r.Sub(r, unit)
			l.Shifts = append(l.Shifts, uint8(s))
		}
	}

	// Rung errors: 1 - A/(num*2^max) * den, where A is the rung's value
	// scaled by 2^max.
	whole := new(big.Int).Lsh(n, maxShift)
	a := new(big.Int).Lsh(k, maxShift)
	for i, s := range l.Shifts {
		if i >= l.First() {
			l.ErrPPM = append(l.ErrPPM, errPPM(a, d, whole))
		}
		a.Add(a, new(big.Int).Lsh(big.NewInt(1), maxShift-uint(s)))
	}
	l.ErrPPM = append(l.ErrPPM, errPPM(a, d, whole))

	// Shifts past the first rung reaching the best ppm figure buy nothing.
	for n := len(l.ErrPPM); n >= 2 && l.ErrPPM[n-1] == l.ErrPPM[n-2]; n-- {
		l.ErrPPM = l.ErrPPM[:n-1]
		l.Shifts = l.Shifts[:len(l.Shifts)-1]
	}
	if len(l.Shifts) == 0 {
		l.Shifts = nil
	}
	return l, nil
}

// errPPM returns ceil((whole - a*d) * 1e6 / whole).
func errPPM(a, d, whole *big.Int) uint32 {
	diff := new(big.Int).Mul(a, d)
	diff.Sub(whole, diff)
	diff.Mul(diff, big.NewInt(PPMScale))
	q, m := new(big.Int).QuoRem(diff, whole, new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return uint32(q.Uint64())
}

// Truncate drops the rungs after the one Select(budgetPPM) picks, so
// Select on the result returns that rung for budgetPPM or any tighter one.
func (l Ladder) Truncate(budgetPPM uint32) Ladder {
	n := len(l.ErrPPM)
	for i, e := range l.ErrPPM {
		if e <= budgetPPM {
			n = i + 1
			break
		}
	}
	return Ladder{Mul: l.Mul, Shifts: l.Shifts[:n-1+l.First()], ErrPPM: l.ErrPPM[:n]}
}

// DeriveDivider computes the delay constants for a CPU clock. With adjusted
// set, the loop rate is scaled down by the share of time the overflow
// handler takes at the given prescale, and one handler run is kept as slack
// so the delay still is not short while the handler fires on schedule.
//
// The loop rate is rounded up and the overhead subtraction rounded down, so
// OverheadCycles + LoopCycles*loops covers the request for every us >= MinUs.
func DeriveDivider(cpuHz, prescale uint64, adjusted bool, p Profile) (Divider, error) {
	if cpuHz == 0 || p.LoopCycles == 0 {
		return Divider{}, ErrZeroRatio
	}
	num := new(big.Int).SetUint64(cpuHz)
	den := new(big.Int).SetUint64(uint64(p.LoopCycles) * PPMScale)
	var slack int64
	if adjusted {
		period := TimerSteps * prescale
		if period <= uint64(p.ISRCycles) {
			return Divider{}, fmt.Errorf("prescale %d: %w", prescale, ErrISRTooSlow)
		}
		num.Mul(num, new(big.Int).SetUint64(period-uint64(p.ISRCycles)))
		den.Mul(den, new(big.Int).SetUint64(period))
		slack = int64(p.ISRCycles)
	}

	// Pick the coarsest precision whose rounding stays within SlackPPM.
	var a *big.Int
	prec := uint(0)
	for ; ; prec++ {
		scaled := new(big.Int).Lsh(num, prec)
		q, m := new(big.Int).QuoRem(scaled, den, new(big.Int))
		if m.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		}
		a = q
		if prec == p.MaxShift {
			break
		}
		over := new(big.Int).Mul(a, den)
		over.Sub(over, scaled)
		over.Mul(over, big.NewInt(PPMScale))
		limit := new(big.Int).Mul(scaled, big.NewInt(int64(p.SlackPPM)))
		if over.Cmp(limit) <= 0 {
			break
		}
	}

	d := Divider{Mul: uint32(new(big.Int).Rsh(a, prec).Uint64())}
	for s := uint(1); s <= prec; s++ {
		if a.Bit(int(prec-s)) == 1 {
			d.Shifts = append(d.Shifts, uint8(s))
		}
	}

	overhead := p.FixedCycles
	if d.Mul > 0 {
		overhead += p.MulCycles
	}
	for _, s := range d.Shifts {
		overhead += p.TermCycles + uint32(s)*p.ShiftCycles
	}
	d.OverheadCycles = overhead
	d.Sub = int32(floorDiv(int64(overhead)-slack, int64(p.LoopCycles)) - int64(len(d.Shifts)))

	// A zero request never runs the loop, whatever Sub is.
	for us := uint32(1); us <= 0xFFFF; us++ {
		n := us * d.Mul
		for _, s := range d.Shifts {
			n += us >> s
		}
		if int64(n)-int64(d.Sub) >= 1 {
			d.MinUs = uint16(us)
			return d, nil
		}
	}
	return Divider{}, fmt.Errorf("%d Hz: %w", cpuHz, ErrNoLoopRange)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
