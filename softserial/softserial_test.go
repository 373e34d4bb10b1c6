package softserial

import (
	"errors"
	"io"
	"testing"

	"tinytime/sim"
	"tinytime/timebase"
)

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
)

type edge struct {
	at   uint64
	high bool
}

// recorder records every level the writer drives, stamped with the simulated
// cycle count.
type recorder struct {
	cpu   *sim.CPU
	edges []edge
}

func (p *recorder) Set(high bool) {
	p.edges = append(p.edges, edge{p.cpu.Cycles(), high})
}

func (p *recorder) levelAt(t uint64) bool {
	level := true
	for _, e := range p.edges {
		if e.at > t {
			break
		}
		level = e.high
	}
	return level
}

// decode samples the recorded line like a receiver at the nominal baud
// rate: wait for a falling edge, then sample each bit in its middle.
func (p *recorder) decode(cpuHz, baud uint32) ([]byte, error) {
	var out []byte
	bit := float64(cpuHz) / float64(baud)
	var after uint64
	for _, e := range p.edges {
		if e.high || e.at < after {
			continue
		}
		start := float64(e.at)
		if p.levelAt(uint64(start+bit/2)) {
			return out, errors.New("glitch instead of start bit")
		}
		var c byte
		for i := 0; i < 8; i++ {
			if p.levelAt(uint64(start + bit*(float64(i)+1.5))) {
				c |= 1 << i
			}
		}
		if !p.levelAt(uint64(start + bit*9.5)) {
			return out, errors.New("framing error")
		}
		out = append(out, c)
		after = uint64(start + bit*9.5)
	}
	return out, nil
}

func newTestWriter(t *testing.T, cpuHz, baud uint32) (*Writer, *recorder, *sim.CPU) {
	t.Helper()
	cpu := sim.New(sim.Config{CPUHz: cpuHz})
	p := &recorder{cpu: cpu}
	w, err := New(p, cpu, cpu, Config{CPUHz: cpuHz, Baud: baud})
	if err != nil {
		t.Fatalf("New(%d Hz, %d baud): %v", cpuHz, baud, err)
	}
	return w, p, cpu
}

func TestDefaultBaud(t *testing.T) {
	testCases := []struct{ hz, want uint32 }{
		{20000000, 115200}, {16000000, 57600}, {9600000, 57600},
		{8000000, 38400}, {4800000, 9600}, {1000000, 9600},
	}
	for _, tc := range testCases {
		if got := DefaultBaud(tc.hz); got != tc.want {
			t.Errorf("DefaultBaud(%d) = %d, want %d", tc.hz, got, tc.want)
		}
	}
}

func TestFramesDecode(t *testing.T) {
	testCases := []struct{ hz, baud uint32 }{
		{8000000, 0},
		{8000000, 115200},
		{16000000, 0},
		{1000000, 0},
		{9600000, 57600},
	}
	msg := []byte("T,1\x00\xff\x55\xaa")
	for _, tc := range testCases {
		w, p, _ := newTestWriter(t, tc.hz, tc.baud)
		n, err := w.Write(msg)
		if err != nil || n != len(msg) {
			t.Fatalf("Write = %d, %v", n, err)
		}
		got, err := p.decode(tc.hz, w.Baud())
		if err != nil {
			t.Fatalf("%d Hz: %v after %q", tc.hz, err, got)
		}
		if string(got) != string(msg) {
			t.Errorf("%d Hz %d baud: decoded %q, want %q", tc.hz, w.Baud(), got, msg)
		}
	}
}

func TestBitTimeWithinTolerance(t *testing.T) {
	for _, hz := range []uint32{1000000, 8000000, 9600000, 16000000, 20000000} {
		w, _, cpu := newTestWriter(t, hz, 0)
		// Keep the overflow latched so its handler does not run inside
		// the measurement.
		cpu.Disable()
		start := cpu.Cycles()
		w.WriteByte('U')
		frame := cpu.Cycles() - start
		want := uint64(hz) * 10 / uint64(w.Baud())
		diff := int64(frame) - int64(want)
		if diff < 0 {
			diff = -diff
		}
		if uint64(diff)*1000000 > want*MaxBaudErrPPM {
			t.Errorf("%d Hz: frame took %d cycles, want about %d", hz, frame, want)
		}
		if uint64(w.BitCycles())*10 != frame {
			t.Errorf("%d Hz: BitCycles %d does not match frame %d", hz, w.BitCycles(), frame)
		}
	}
}

func TestIdleHighAndMaskedPerByte(t *testing.T) {
	cpu := sim.New(sim.Config{CPUHz: 8000000})
	p := &recorder{cpu: cpu}
	var fired int
	cpu.Attach(func() { fired++ })

	w, err := New(p, cpu, cpu, Config{CPUHz: 8000000})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.edges) != 1 || !p.edges[0].high {
		t.Fatalf("New did not idle the line high: %v", p.edges)
	}
	w.WriteString("0123456789")
	if !cpu.Enabled() {
		t.Error("interrupts left masked")
	}
	// Overflows during a byte are latched and delivered between bytes.
	if fired == 0 || cpu.Overflows() < uint64(fired) {
		t.Errorf("fired %d of %d overflows", fired, cpu.Overflows())
	}
	if got, _ := p.decode(8000000, w.Baud()); string(got) != "0123456789" {
		t.Errorf("decoded %q", got)
	}
}

func TestPrintHelpers(t *testing.T) {
	w, p, _ := newTestWriter(t, 8000000, 0)
	w.PrintUint(4294967295)
	w.WriteByte(' ')
	w.PrintInt(-42)
	w.Println("")
	w.Println("ok")
	got, err := p.decode(8000000, w.Baud())
	if err != nil {
		t.Fatal(err)
	}
	if want := "4294967295 -42\r\nok\r\n"; string(got) != want {
		t.Errorf("decoded %q, want %q", got, want)
	}
}

func TestUnreachableBaud(t *testing.T) {
	testCases := []struct{ hz, baud uint32 }{
		{16000, 9600},
		{32768, 0},
		{1000000, 115200},
		{8000000, 0x7FFFFFFF},
		{0, 9600},
	}
	for _, tc := range testCases {
		_, err := New(&recorder{cpu: sim.New(sim.Config{CPUHz: 1000000})}, nil, nil, Config{CPUHz: tc.hz, Baud: tc.baud})
		if !errors.Is(err, ErrBaud) {
			t.Errorf("%d Hz %d baud: got %v, want ErrBaud", tc.hz, tc.baud, err)
		}
	}
}

func TestHardwareDefaults(t *testing.T) {
	w, err := New(&recorder{cpu: sim.New(sim.Config{CPUHz: 8000000})}, nil, nil, Config{CPUHz: 8000000})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := w.spin.(timebase.Loop); !ok {
		t.Errorf("default spinner = %T", w.spin)
	}
	if _, ok := w.irq.(timebase.CPU); !ok {
		t.Errorf("default interrupts = %T", w.irq)
	}
}

// From 1 MHz up, a frame at the default baud fits in one /64 overflow
// period, so a byte sent with interrupts masked never costs an overflow.
func TestDefaultFrameFitsOverflowPeriod(t *testing.T) {
	for _, hz := range timebase.CPUFrequencies() {
		if hz < 1000000 {
			continue
		}
		cpu := sim.New(sim.Config{CPUHz: hz})
		w, err := New(&recorder{cpu: cpu}, cpu, cpu, Config{CPUHz: hz})
		if err != nil {
			t.Errorf("%d Hz: %v", hz, err)
			continue
		}
		if frame := 10 * w.BitCycles(); frame >= 256*64 {
			t.Errorf("%d Hz at %d baud: frame of %d cycles", hz, w.Baud(), frame)
		}
	}
}

// A slower pin write is taken out of the delay loop, so the bit time stays
// on the nominal rate.
func TestOverheadCyclesShortenTheLoop(t *testing.T) {
	cpu := sim.New(sim.Config{CPUHz: 8000000})
	line := &recorder{cpu: cpu}
	w, err := New(line, cpu, cpu, Config{CPUHz: 8000000, Baud: 9600, OverheadCycles: 61})
	if err != nil {
		t.Fatal(err)
	}
	def, err := New(&recorder{cpu: cpu}, cpu, cpu, Config{CPUHz: 8000000, Baud: 9600})
	if err != nil {
		t.Fatal(err)
	}
	if got := def.loops - w.loops; got != 13 {
		t.Errorf("61-cycle overhead saves %d loops, want 13", got)
	}

	cpu.Disable()
	start := cpu.Cycles()
	w.WriteString("Tb")
	if got := cpu.Cycles() - start; got != 20*uint64(w.BitCycles()) {
		t.Errorf("two frames took %d cycles, BitCycles %d", got, w.BitCycles())
	}
	if diff := int64(w.BitCycles()) - 833; diff < -4 || diff > 4 {
		t.Errorf("bit of %d cycles at 9600 baud, want about 833", w.BitCycles())
	}
	if got, err := line.decode(8000000, 9600); err != nil || string(got) != "Tb" {
		t.Errorf("decoded %q, %v", got, err)
	}
}
