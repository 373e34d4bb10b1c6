// Package softserial is a transmit-only 8N1 UART bit-banged on one output
// pin. Bit timing comes from the calibrated delay loop, so it needs no
// timer and works with the timebase disabled.
package softserial

import (
	"errors"
	"strconv"

	"tinytime/internal/errs"
	"tinytime/timebase"
)

var ErrBaud = errors.New("baud rate not reachable at this clock")

// BitOverheadCycles is the default fixed cost of one bit outside the delay
// loop: shifting the byte, setting the pin and entering the loop. It fits a
// pin write of a few cycles; a slower Pin needs Config.OverheadCycles.
const BitOverheadCycles = 9

// MaxBaudErrPPM is the largest bit-time error New accepts. A frame of ten
// bits sampled mid-bit tolerates a few percent.
const MaxBaudErrPPM = 30000

// Pin is the TX output.
type Pin interface {
	Set(high bool)
}

type Config struct {
	CPUHz uint32
	// Baud defaults to DefaultBaud(CPUHz).
	Baud uint32
	// OverheadCycles is the per-bit cost outside the delay loop,
	// BitOverheadCycles when zero. The loop count is shortened by it.
	OverheadCycles uint32
}

// Writer sends bytes on a pin. Interrupts are masked for each byte so the
// overflow handler cannot stretch a bit; ten BitCycles must stay below the
// overflow period or overflows are lost.
type Writer struct {
	tx   Pin
	spin timebase.Spinner
	// sim is spin when it models the per-bit overhead, else nil.
	sim      timebase.OverheadSpinner
	irq      timebase.Interrupts
	baud     uint32
	overhead uint32
	loops    uint32
	buf      [20]byte
}

// DefaultBaud returns the fastest standard rate the bit loop holds
// comfortably at cpuHz.
func DefaultBaud(cpuHz uint32) uint32 {
	switch {
	case cpuHz > 16000000:
		return 115200
	case cpuHz > 9000000:
		return 57600
	case cpuHz > 5000000:
		return 38400
	default:
		return 9600
	}
}

// New drives tx to the idle (high) level and returns a Writer. Nil spin
// and irq use the running CPU.
func New(tx Pin, spin timebase.Spinner, irq timebase.Interrupts, cfg Config) (*Writer, error) {
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud(cfg.CPUHz)
	}
	if cfg.OverheadCycles == 0 {
		cfg.OverheadCycles = BitOverheadCycles
	}
	loops, err := bitLoops(cfg.CPUHz, cfg.Baud, cfg.OverheadCycles, timebase.TableProfile().LoopCycles)
	if err != nil {
		return nil, err
	}
	if spin == nil {
		spin = timebase.Loop{}
	}
	if irq == nil {
		irq = timebase.CPU{}
	}
	w := &Writer{tx: tx, spin: spin, irq: irq, baud: cfg.Baud, overhead: cfg.OverheadCycles, loops: loops}
	w.sim, _ = spin.(timebase.OverheadSpinner)
	tx.Set(true)
	return w, nil
}

// bitLoops returns the delay loop count closest to one bit time.
func bitLoops(cpuHz, baud, overhead, loopCycles uint32) (uint32, error) {
	if cpuHz == 0 || baud == 0 {
		return 0, errs.Wrapf(ErrBaud, "%d baud at %d Hz", baud, cpuHz)
	}
	// bit time in cycles, scaled by baud to stay integral
	want := uint64(cpuHz)
	over := uint64(overhead) * uint64(baud)
	if want <= over {
		return 0, errs.Wrapf(ErrBaud, "%d baud at %d Hz", baud, cpuHz)
	}
	step := uint64(loopCycles) * uint64(baud)
	loops := (want - over + step/2) / step
	if loops == 0 || loops > 0xFFFF {
		return 0, errs.Wrapf(ErrBaud, "%d baud at %d Hz", baud, cpuHz)
	}
	got := over + loops*step
	var diff uint64
	if got > want {
		diff = got - want
	} else {
		diff = want - got
	}
	if diff*1000000 > want*MaxBaudErrPPM {
		return 0, errs.Wrapf(ErrBaud, "%d baud at %d Hz is %d ppm off", baud, cpuHz, diff*1000000/want)
	}
	return uint32(loops), nil
}

// Baud returns the configured rate.
func (w *Writer) Baud() uint32 {
	return w.baud
}

// BitCycles returns the length of one bit in CPU cycles.
func (w *Writer) BitCycles() uint32 {
	return w.overhead + w.loops*timebase.TableProfile().LoopCycles
}

// WriteByte sends one frame: start bit, eight data bits LSB first, stop bit.
func (w *Writer) WriteByte(c byte) error {
	state := w.irq.Disable()
	defer w.irq.Restore(state)

	w.bit(false)
	for i := 0; i < 8; i++ {
		w.bit(c&1 != 0)
		c >>= 1
	}
	w.bit(true)
	return nil
}

func (w *Writer) bit(high bool) {
	w.tx.Set(high)
	if w.sim != nil {
		w.sim.Overhead(w.overhead)
	}
	w.spin.Spin(w.loops)
}

// Write sends p. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	for _, c := range p {
		w.WriteByte(c)
	}
	return len(p), nil
}

// WriteString sends s without converting it to a byte slice.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		w.WriteByte(s[i])
	}
	return len(s), nil
}

// PrintUint sends v in decimal.
func (w *Writer) PrintUint(v uint32) {
	w.Write(strconv.AppendUint(w.buf[:0], uint64(v), 10))
}

// PrintInt sends v in decimal with a leading minus when negative.
func (w *Writer) PrintInt(v int32) {
	w.Write(strconv.AppendInt(w.buf[:0], int64(v), 10))
}

// Println sends s followed by CR LF.
func (w *Writer) Println(s string) {
	w.WriteString(s)
	w.WriteString("\r\n")
}
