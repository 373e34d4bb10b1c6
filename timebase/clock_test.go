package timebase_test

import (
	"math/rand"
	"testing"

	"tinytime/sim"
	"tinytime/timebase"
)

func newSimClock(t *testing.T, cfg timebase.Config) (*timebase.Clock, *sim.CPU) {
	t.Helper()
	cpu := sim.New(sim.Config{CPUHz: cfg.CPUHz, Prescale: cfg.Prescale})
	clk, err := timebase.NewClock(cfg, cpu, cpu)
	if err != nil {
		t.Fatalf("NewClock(%+v): %v", cfg, err)
	}
	cpu.Attach(clk.Overflow)
	return clk, cpu
}

// 8 MHz with /64 is a 125 kHz tick: 2.048 ms per overflow.
func TestMillisAfter1000Overflows125kHz(t *testing.T) {
	clk, cpu := newSimClock(t, timebase.Config{CPUHz: 8000000, Prescale: 64})
	cpu.AdvanceOverflows(1000)

	if got := clk.Counter().Load(); got != 1000 {
		t.Fatalf("counter = %d, want 1000", got)
	}
	const exact = 1000 * 256 * 1000 / 125000 // 2048 ms
	got := clk.Millis()
	if got > exact {
		t.Fatalf("Millis = %d, ahead of %d", got, exact)
	}
	errPPM := clk.MillisScale().ErrPPM
	if errPPM != 23438 {
		t.Errorf("loosest rung error = %d ppm, want 23438", errPPM)
	}
	if uint64(exact-got)*1000000 > uint64(exact)*uint64(errPPM) {
		t.Errorf("Millis = %d, further behind %d than %d ppm", got, exact, errPPM)
	}
	if got != 2000 {
		t.Errorf("Millis = %d, want 2000", got)
	}
	if us := clk.Micros(); us != 2048000 {
		t.Errorf("Micros = %d, want 2048000", us)
	}
}

func TestExactTickRatesHaveZeroError(t *testing.T) {
	testCases := []struct {
		cpu, prescale uint32
	}{
		{16000, 1},  // 16 ms per overflow
		{128000, 1}, // 2 ms per overflow
	}
	for _, tc := range testCases {
		clk, cpu := newSimClock(t, timebase.Config{CPUHz: tc.cpu, Prescale: tc.prescale, Millis: timebase.PPM(0)})
		for _, n := range []uint64{1, 10, 999, 5000} {
			cpu.AdvanceOverflows(n)
			cycles := cpu.Overflows() * 256 * uint64(tc.prescale)
			wantMs := cycles * 1000 / uint64(tc.cpu)
			wantUs := cycles * 1000000 / uint64(tc.cpu)
			if got := clk.Millis(); uint64(got) != wantMs {
				t.Errorf("%d Hz /%d after %d overflows: Millis = %d, want %d", tc.cpu, tc.prescale, cpu.Overflows(), got, wantMs)
			}
			if got := clk.Micros(); uint64(got) != wantUs {
				t.Errorf("%d Hz /%d after %d overflows: Micros = %d, want %d", tc.cpu, tc.prescale, cpu.Overflows(), got, wantUs)
			}
		}
		if clk.MillisScale().ErrPPM != 0 || clk.MicrosScale().ErrPPM != 0 {
			t.Errorf("%d Hz /%d: exact tick rate reports error", tc.cpu, tc.prescale)
		}
		if got := clk.RealMillis(1000); got != 1000 {
			t.Errorf("%d Hz /%d: RealMillis(1000) = %d", tc.cpu, tc.prescale, got)
		}
	}
}

func TestMillisMonotonicAndNeverAhead(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	configs := []timebase.Config{
		{CPUHz: 9600000},
		{CPUHz: 9600000, Millis: timebase.PPM(0)},
		{CPUHz: 1200000, Prescale: 1},
		{CPUHz: 32768, Prescale: 1, Millis: timebase.PPM(40000)},
		{CPUHz: 20000000, Prescale: 64, Micros: timebase.PPM(5)},
	}
	for _, cfg := range configs {
		clk, cpu := newSimClock(t, cfg)
		var lastMs, lastUs uint32
		for i := 0; i < 2000; i++ {
			cpu.Advance(uint64(rng.Intn(5000)))
			ms, us := clk.Millis(), clk.Micros()
			if ms < lastMs || us < lastUs {
				t.Fatalf("%+v: time went backwards: %d/%d after %d/%d", cfg, ms, us, lastMs, lastUs)
			}
			if uint64(ms) > cpu.RealMillis() || uint64(us) > cpu.RealMicros() {
				t.Fatalf("%+v: device time %d ms / %d us ahead of real %d ms / %d us",
					cfg, ms, us, cpu.RealMillis(), cpu.RealMicros())
			}
			lastMs, lastUs = ms, us
		}
	}
}

func TestRealMillisScalesBySlowBias(t *testing.T) {
	clk, cpu := newSimClock(t, timebase.Config{CPUHz: 8000000, Prescale: 64})
	if got := clk.RealMillis(1000); got != 976 {
		t.Errorf("RealMillis(1000) = %d, want 976", got)
	}
	if got := clk.RealMicros(1000); got != 1000 {
		t.Errorf("RealMicros(1000) = %d, want 1000", got)
	}

	// Waiting RealMillis(n) device milliseconds takes n real ones, less
	// the granularity of one overflow.
	begin := clk.Millis()
	for clk.Millis()-begin < clk.RealMillis(1000) {
		cpu.Advance(100)
	}
	if real := cpu.RealMillis(); real+3 < 1000 {
		t.Errorf("waited %d real ms for RealMillis(1000)", real)
	}
}

// overflowBeforeLowByte raises one overflow in the last read window of c,
// after bytes 3 to 1 have been taken.
func overflowBeforeLowByte(c *timebase.Counter, cpu *sim.CPU) {
	calls := 0
	timebase.SetReadWindow(c, func() {
		calls++
		if calls == 3 {
			cpu.RaiseOverflow()
		}
	})
}

func TestMaskedReadSurvivesOverflowMidRead(t *testing.T) {
	cpu := sim.New(sim.Config{CPUHz: 8000000})
	c := timebase.NewCounter(cpu)
	cpu.Attach(c.Overflow)

	timebase.SetCount(c, 0x000000FF)
	overflowBeforeLowByte(c, cpu)

	if got := c.Load(); got != 0xFF {
		t.Fatalf("masked Load = %#x, want 0xff", got)
	}
	if !cpu.Enabled() {
		t.Error("Load left interrupts disabled")
	}
	if cpu.Fired() != 1 {
		t.Errorf("latched overflow delivered %d times, want 1", cpu.Fired())
	}
	timebase.SetReadWindow(c, nil)
	if got := c.Load(); got != 0x100 {
		t.Errorf("after delivery Load = %#x, want 0x100", got)
	}
}

// Negative control: without masking, the same overflow tears the read.
func TestUnmaskedReadTears(t *testing.T) {
	cpu := sim.New(sim.Config{CPUHz: 8000000})
	c := timebase.NewCounter(cpu)
	cpu.Attach(c.Overflow)

	timebase.SetCount(c, 0x000000FF)
	overflowBeforeLowByte(c, cpu)

	// The high bytes were read as zero before the carry, the low byte after.
	if got := timebase.LoadUnmasked(c); got != 0 {
		t.Fatalf("unmasked read = %#x, want the torn value 0", got)
	}
}

func TestMillisMaskedAgainstMidReadOverflow(t *testing.T) {
	clk, cpu := newSimClock(t, timebase.Config{CPUHz: 16000, Prescale: 1})
	timebase.SetCount(clk.Counter(), 0x0000FFFF)
	before := clk.Millis()
	timebase.SetReadWindow(clk.Counter(), cpu.RaiseOverflow)

	got := clk.Millis()
	if got < before {
		t.Errorf("Millis = %d dropped below %d across an overflow", got, before)
	}
	if got != before {
		t.Errorf("Millis = %d; the overflow should land after the read", got)
	}
	timebase.SetReadWindow(clk.Counter(), nil)
	if after := clk.Millis(); after <= before {
		t.Errorf("latched overflows not counted: %d", after)
	}
}

func TestReadRestoresPriorInterruptState(t *testing.T) {
	clk, cpu := newSimClock(t, timebase.Config{CPUHz: 8000000})
	state := cpu.Disable()
	clk.Millis()
	clk.Micros()
	clk.Counter().Load()
	if cpu.Enabled() {
		t.Error("reading the clock enabled interrupts that were off")
	}
	cpu.Restore(state)
	if !cpu.Enabled() {
		t.Error("Restore did not re-enable interrupts")
	}
}

func TestCounterWrapsSilently(t *testing.T) {
	clk, cpu := newSimClock(t, timebase.Config{CPUHz: 16000, Prescale: 1})
	timebase.SetCount(clk.Counter(), 0xFFFFFFFF)
	if got := clk.Millis(); got != 0xFFFFFFF0 {
		t.Errorf("Millis at max count = %#x, want 0xfffffff0", got)
	}
	cpu.AdvanceOverflows(1)
	if got := clk.Counter().Load(); got != 0 {
		t.Errorf("count after wrap = %d, want 0", got)
	}
	if got := clk.Millis(); got != 0 {
		t.Errorf("Millis after wrap = %d, want 0", got)
	}
}
