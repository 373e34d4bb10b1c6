// Package drift measures how a device's Millis clock runs against host
// time. Samples are fitted with a least-squares line; the slope's distance
// from 1 is the drift, which for a correctly built timebase is negative and
// no larger than the selected rung's error bound.
package drift

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrTooFewPoints = errors.New("need at least two samples spanning some time")

// Verdict classifies a drift measurement.
type Verdict int

const (
	WithinBudget Verdict = iota
	// OverBudget means the device loses more time than its error bound
	// and the clock tolerance allow.
	OverBudget
	// Fast means the device clock runs ahead of real time, which a
	// slow-biased timebase never does.
	Fast
)

func (v Verdict) String() string {
	switch v {
	case WithinBudget:
		return "within budget"
	case OverBudget:
		return "over budget"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

type Config struct {
	// BudgetPPM is the device's selected millis error bound.
	BudgetPPM uint32
	// TolerancePPM absorbs the CPU oscillator's own error and host jitter.
	TolerancePPM uint32
}

// Tracker accumulates (host time, device millis) pairs. It unwraps the
// device's 32-bit millis, assuming consecutive samples are less than 2^32
// ms apart.
type Tracker struct {
	cfg    Config
	start  time.Time
	xs, ys []float64

	last    uint32
	device  uint64
	lastSeq uint32
	missed  uint64
}

func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Add records device millis read at host time at. seq is the device's
// sample counter, used to count lost samples.
func (t *Tracker) Add(at time.Time, seq, millis uint32) {
	if len(t.xs) == 0 {
		t.start = at
		t.last = millis
		t.lastSeq = seq
	} else {
		t.device += uint64(millis - t.last)
		t.last = millis
		if gap := seq - t.lastSeq; gap > 1 {
			t.missed += uint64(gap - 1)
		}
		t.lastSeq = seq
	}
	t.xs = append(t.xs, float64(at.Sub(t.start))/float64(time.Millisecond))
	t.ys = append(t.ys, float64(t.device))
}

// Len returns the number of samples.
func (t *Tracker) Len() int {
	return len(t.xs)
}

// Report is one drift measurement.
type Report struct {
	Points   int
	Missed   uint64
	Span     time.Duration
	Slope    float64
	DriftPPM float64
	Budget   uint32
	Verdict  Verdict
}

func (r Report) String() string {
	return fmt.Sprintf("%d samples over %s (%d missed): drift %+.1f ppm, budget %d ppm: %s",
		r.Points, r.Span.Round(time.Millisecond), r.Missed, r.DriftPPM, r.Budget, r.Verdict)
}

// Report fits the samples so far.
func (t *Tracker) Report() (Report, error) {
	slope, err := fit(t.xs, t.ys)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Points:   len(t.xs),
		Missed:   t.missed,
		Span:     time.Duration(t.xs[len(t.xs)-1] * float64(time.Millisecond)),
		Slope:    slope,
		DriftPPM: (slope - 1) * 1e6,
		Budget:   t.cfg.BudgetPPM,
	}
	tol := float64(t.cfg.TolerancePPM)
	switch {
	case r.DriftPPM > tol:
		r.Verdict = Fast
	case -r.DriftPPM > float64(t.cfg.BudgetPPM)+tol:
		r.Verdict = OverBudget
	}
	return r, nil
}

// fit returns the least-squares slope of ys over xs.
func fit(xs, ys []float64) (float64, error) {
	n := float64(len(xs))
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= n
	my /= n
	var sxy, sxx float64
	for i := range xs {
		dx := xs[i] - mx
		sxy += dx * (ys[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 || math.IsNaN(sxx) {
		return 0, ErrTooFewPoints
	}
	return sxy / sxx, nil
}
