package timebase_test

import (
	"math/big"
	"reflect"
	"testing"

	"tinytime/approx"
	"tinytime/timebase"
)

// The generated tables must equal a fresh derivation; this is the check
// that the published constants are what the derivation says they are.
func TestTablesMatchDerivation(t *testing.T) {
	p := timebase.TableProfile()
	for _, hz := range timebase.TickRates() {
		ms, us, ok := timebase.Ladders(hz)
		if !ok {
			t.Fatalf("%d Hz listed but not found", hz)
		}
		wantMs, err := approx.DeriveLadder(256*1000, uint64(hz), p.MaxShift)
		if err != nil {
			t.Fatal(err)
		}
		wantUs, err := approx.DeriveLadder(256*1000000, uint64(hz), p.MaxShift)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(ms, wantMs) {
			t.Errorf("%d Hz millis ladder = %+v, derived %+v", hz, ms, wantMs)
		}
		if !reflect.DeepEqual(us, wantUs) {
			t.Errorf("%d Hz micros ladder = %+v, derived %+v", hz, us, wantUs)
		}
	}

	for _, cpu := range timebase.CPUFrequencies() {
		got, ok := timebase.DividerFor(cpu, 0)
		if !ok {
			t.Fatalf("%d Hz plain divider missing", cpu)
		}
		want, err := approx.DeriveDivider(uint64(cpu), 1, false, p)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%d Hz plain divider = %+v, derived %+v", cpu, got, want)
		}
		for _, pre := range []uint32{1, 8, 64} {
			got, ok := timebase.DividerFor(cpu, pre)
			if !ok {
				t.Fatalf("%d Hz /%d adjusted divider missing", cpu, pre)
			}
			want, err := approx.DeriveDivider(uint64(cpu), uint64(pre), true, p)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%d Hz /%d adjusted divider = %+v, derived %+v", cpu, pre, got, want)
			}
		}
	}
}

func TestTickRatesCoverCPUPrescaleQuotients(t *testing.T) {
	rates := make(map[uint32]bool)
	for _, hz := range timebase.TickRates() {
		rates[hz] = true
	}
	for _, cpu := range timebase.CPUFrequencies() {
		for _, pre := range []uint32{1, 8, 64} {
			if cpu%pre == 0 && !rates[cpu/pre] {
				t.Errorf("%d / %d has no ladder", cpu, pre)
			}
		}
	}
	if !rates[16000] || !rates[125000] {
		t.Error("16 kHz and 125 kHz tick rates must be supported")
	}
}

// Every rung of every table: never ahead of real time, and no further behind
// than its ErrPPM plus one unit per truncating shift term.
func TestEveryRungSlowBiasedWithinBound(t *testing.T) {
	xs := []uint32{1, 7, 255, 1000, 4096, 65535, 65536, 100003, 1 << 20}
	for _, hz := range timebase.TickRates() {
		ms, us, _ := timebase.Ladders(hz)
		for _, l := range []struct {
			name   string
			ladder approx.Ladder
			num    int64
		}{
			{"millis", ms, 256 * 1000},
			{"micros", us, 256 * 1000000},
		} {
			for i := 0; i < l.ladder.Rungs(); i++ {
				s := l.ladder.Rung(i)
				for _, x := range xs {
					if uint64(x)*(uint64(s.Mul)+1) > 0xFFFFFFFF {
						continue
					}
					got := big.NewInt(int64(s.Apply(x)))
					// truth = x*num/hz; check got*hz <= x*num
					lhs := new(big.Int).Mul(got, big.NewInt(int64(hz)))
					truth := new(big.Int).Mul(big.NewInt(int64(x)), big.NewInt(l.num))
					if lhs.Cmp(truth) > 0 {
						t.Fatalf("%d Hz %s rung %d: Apply(%d) = %s ahead of real time", hz, l.name, i, x, got)
					}
					// (got + terms) * hz * 1e6 >= truth * (1e6 - err)
					upper := new(big.Int).Add(got, big.NewInt(int64(len(s.Shifts))))
					upper.Mul(upper, big.NewInt(int64(hz)*approx.PPMScale))
					lower := new(big.Int).Mul(truth, big.NewInt(int64(approx.PPMScale-s.ErrPPM)))
					if upper.Cmp(lower) < 0 {
						t.Fatalf("%d Hz %s rung %d: Apply(%d) = %s behind its %d ppm bound", hz, l.name, i, x, got, s.ErrPPM)
					}
				}
			}
		}
	}
}

func TestTighterBudgetNeverLessAccurate(t *testing.T) {
	budgets := []uint32{1000000, 500000, 100000, 50000, 23438, 10000, 5000, 1000, 500, 100, 10, 1, 0}
	for _, hz := range timebase.TickRates() {
		ms, us, _ := timebase.Ladders(hz)
		for _, l := range []approx.Ladder{ms, us} {
			prev := l.Select(budgets[0])
			for _, b := range budgets[1:] {
				s := l.Select(b)
				if s.ErrPPM > prev.ErrPPM {
					t.Errorf("%d Hz: budget %d selected %d ppm, looser budget had %d ppm", hz, b, s.ErrPPM, prev.ErrPPM)
				}
				if len(s.Shifts) < len(prev.Shifts) {
					t.Errorf("%d Hz: budget %d uses fewer terms than a looser budget", hz, b)
				}
				if s.ErrPPM < prev.ErrPPM && len(s.Shifts) <= len(prev.Shifts) {
					t.Errorf("%d Hz: better accuracy at budget %d without extra terms", hz, b)
				}
				prev = s
			}
		}
	}
}

func TestDelayStepClearsFloor(t *testing.T) {
	for _, cpu := range timebase.CPUFrequencies() {
		d, err := timebase.NewDelayer(timebase.Config{CPUHz: cpu, NoMillis: true}, nil)
		if err != nil {
			t.Fatalf("%d Hz: %v", cpu, err)
		}
		step := uint32(d.Step()) * 1000
		if step > 0xFFFF || step < uint32(d.Divider().MinUs) {
			t.Errorf("%d Hz: delay step %d us does not clear MinUs %d", cpu, step, d.Divider().MinUs)
		}
	}
}

// The tables are derived for the AVR sbiw/brne loop; a profile with any
// other loop cost would time every delay wrong on hardware.
func TestProfileMatchesAVRLoop(t *testing.T) {
	if got := timebase.TableProfile().LoopCycles; got != timebase.LoopCycles {
		t.Errorf("tables assume %d cycles per loop, the AVR loop takes %d", got, timebase.LoopCycles)
	}
	if p := timebase.TableProfile(); p != approx.AVR {
		t.Errorf("tables derived with %+v, the AVR profile is %+v", p, approx.AVR)
	}
}
