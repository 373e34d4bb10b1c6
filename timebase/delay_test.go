package timebase_test

import (
	"testing"

	"tinytime/sim"
	"tinytime/timebase"
)

func TestDelayBelowFloorReturnsAtOnce(t *testing.T) {
	cpu := sim.New(sim.Config{CPUHz: 16000, Prescale: 1})
	d, err := timebase.NewDelayer(timebase.Config{CPUHz: 16000, NoMillis: true}, cpu)
	if err != nil {
		t.Fatal(err)
	}
	floor := d.Divider().MinUs
	if floor != 7680 {
		t.Fatalf("MinUs = %d, want 7680", floor)
	}
	cpu.Disable()
	d.DelayMicroseconds(floor - 1)
	if cpu.Cycles() != 0 {
		t.Errorf("DelayMicroseconds(%d) ran %d cycles", floor-1, cpu.Cycles())
	}
	d.DelayMicroseconds(floor)
	if cpu.Cycles()*1000000 < uint64(floor)*16000 {
		t.Errorf("DelayMicroseconds(%d) ran only %d cycles", floor, cpu.Cycles())
	}
}

func TestZeroDelayCostsNothing(t *testing.T) {
	for _, hz := range timebase.CPUFrequencies() {
		for _, pre := range []uint32{0, 1, 8, 64} {
			cfg := timebase.Config{CPUHz: hz, NoMillis: true}
			if pre > 0 {
				cfg = timebase.Config{CPUHz: hz, Prescale: pre, DelayMode: timebase.DelayAdjusted}
				if _, ok := cfg.TickHz(); !ok {
					continue
				}
			}
			cpu := sim.New(sim.Config{CPUHz: hz})
			d, err := timebase.NewDelayer(cfg, cpu)
			if err != nil {
				t.Fatalf("%d Hz /%d: %v", hz, pre, err)
			}
			cpu.Disable()
			d.DelayMicroseconds(0)
			if cpu.Cycles() != 0 {
				t.Errorf("%d Hz /%d: DelayMicroseconds(0) ran %d cycles", hz, pre, cpu.Cycles())
			}
			if d.MinDelay() == 0 {
				t.Errorf("%d Hz /%d: MinDelay is 0", hz, pre)
			}
		}
	}
}

func TestPlainDelayNeverShortMasked(t *testing.T) {
	for _, hz := range timebase.CPUFrequencies() {
		cpu := sim.New(sim.Config{CPUHz: hz})
		d, err := timebase.NewDelayer(timebase.Config{CPUHz: hz, NoMillis: true}, cpu)
		if err != nil {
			t.Fatalf("%d Hz: %v", hz, err)
		}
		cpu.Disable()
		for us := uint32(d.Divider().MinUs); us <= 0xFFFF; us += 251 {
			start := cpu.Cycles()
			d.DelayMicroseconds(uint16(us))
			if got := cpu.Cycles() - start; got*1000000 < uint64(us)*uint64(hz) {
				t.Errorf("%d Hz: %d us took %d cycles", hz, us, got)
			}
		}
	}
}

// With the overflow handler firing on schedule, the adjusted divider keeps
// delays from running short at every supported prescale.
func TestAdjustedDelayNeverShortUnderISR(t *testing.T) {
	for _, hz := range timebase.CPUFrequencies() {
		for _, pre := range []uint32{1, 8, 64} {
			cfg := timebase.Config{CPUHz: hz, Prescale: pre, DelayMode: timebase.DelayAdjusted}
			if _, ok := cfg.TickHz(); !ok {
				continue
			}
			clk, cpu := newSimClock(t, cfg)
			for us := uint32(clk.Divider().MinUs); us <= 0xFFFF; us += 733 {
				start := cpu.Cycles()
				clk.DelayMicroseconds(uint16(us))
				if got := cpu.Cycles() - start; got*1000000 < uint64(us)*uint64(hz) {
					t.Errorf("%d Hz /%d: %d us took %d cycles", hz, pre, us, got)
				}
			}
		}
	}
}

func TestAdjustedDelayCloserThanPlain(t *testing.T) {
	const us = 10000
	adjusted, cpuA := newSimClock(t, timebase.Config{CPUHz: 8000000, Prescale: 8})
	plain, cpuP := newSimClock(t, timebase.Config{CPUHz: 8000000, Prescale: 8, DelayMode: timebase.DelayPlain})

	adjusted.DelayMicroseconds(us)
	plain.DelayMicroseconds(us)

	const want = us * 8
	a, p := cpuA.Cycles(), cpuP.Cycles()
	if a < want {
		t.Errorf("adjusted delay short: %d cycles", a)
	}
	if a > want+want/100 {
		t.Errorf("adjusted delay %d cycles, more than 1%% over %d", a, want)
	}
	if a >= p {
		t.Errorf("adjusted %d cycles not closer than plain %d", a, p)
	}
}

func TestDelayMillisecondsAtLeastRequested(t *testing.T) {
	testCases := []struct {
		hz uint32
		ms []uint16
	}{
		{8000000, []uint16{0, 1, 2, 17, 250}},
		{1000000, []uint16{1, 3, 100}},
		// 16 kHz needs 8 ms steps to clear the loop floor.
		{16000, []uint16{1, 5, 8, 9, 40}},
	}
	for _, tc := range testCases {
		cpu := sim.New(sim.Config{CPUHz: tc.hz})
		d, err := timebase.NewDelayer(timebase.Config{CPUHz: tc.hz, NoMillis: true}, cpu)
		if err != nil {
			t.Fatal(err)
		}
		cpu.Disable()
		for _, ms := range tc.ms {
			start := cpu.Cycles()
			d.Delay(ms)
			got := cpu.Cycles() - start
			if got*1000 < uint64(ms)*uint64(tc.hz) {
				t.Errorf("%d Hz: Delay(%d) took %d cycles", tc.hz, ms, got)
			}
			if ms == 0 && got != 0 {
				t.Errorf("%d Hz: Delay(0) took %d cycles", tc.hz, got)
			}
		}
	}
	if chunk := mustDelayer(t, 16000).Step(); chunk != 8 {
		t.Errorf("16 kHz delay step = %d ms, want 8", chunk)
	}
}

// Delay rounds up to whole steps and never by more than one.
func TestDelayOvershootBelowOneStep(t *testing.T) {
	for _, hz := range []uint32{16000, 32768, 1000000, 8000000} {
		cpu := sim.New(sim.Config{CPUHz: hz})
		d, err := timebase.NewDelayer(timebase.Config{CPUHz: hz, NoMillis: true}, cpu)
		if err != nil {
			t.Fatal(err)
		}
		cpu.Disable()
		step := uint64(d.Step())
		for _, ms := range []uint16{1, 2, 7, 9, 100} {
			start := cpu.Cycles()
			d.Delay(ms)
			got := cpu.Cycles() - start
			// one step, plus per call the slow-biased rate and the call cost
			calls := (uint64(ms) + step - 1) / step
			limit := (uint64(ms)+step)*uint64(hz)/1000 + calls*(uint64(hz)/100000+256)
			if got >= limit {
				t.Errorf("%d Hz: Delay(%d) took %d cycles, limit %d", hz, ms, got, limit)
			}
		}
	}
	if d := mustDelayer(t, 16000); d.Step() != 8 {
		t.Errorf("16 kHz step = %d ms, want 8", d.Step())
	}
}

func mustDelayer(t *testing.T, hz uint32) *timebase.Delayer {
	t.Helper()
	d, err := timebase.NewDelayer(timebase.Config{CPUHz: hz, NoMillis: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
