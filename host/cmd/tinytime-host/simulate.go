package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"tinytime/host/drift"
	"tinytime/host/mcu"
	"tinytime/protocol"
	"tinytime/sim"
	"tinytime/timebase"
)

// pollCycles is the cost of one pass of the firmware's wait loop: a Millis
// call and the comparison.
const pollCycles = 48

// loopback carries frames from the simulated device to the reader.
type loopback struct {
	bytes.Buffer
}

func (l *loopback) Close() error {
	return nil
}

func (l *loopback) Flush() error {
	l.Reset()
	return nil
}

func simulate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("simulate", stderr)
	cpuHz := fs.Uint("cpu", 8000000, "CPU clock in Hz")
	prescale := fs.Uint("prescale", 0, "timer prescale (0 = default for the clock)")
	millisPPM := fs.Uint("millis-ppm", timebase.LoosestPPM, "millis error budget in ppm")
	microsPPM := fs.Int("micros-ppm", -1, "micros error budget in ppm (-1 = same as millis)")
	samples := fs.Int("samples", 60, "number of samples")
	period := fs.Uint("period", 1000, "real milliseconds between samples")
	tolerance := fs.Uint("tolerance", 100, "drift tolerance in ppm beyond the budget")
	verbose := fs.Bool("verbose", false, "print every frame")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := timebase.Config{
		CPUHz:    uint32(*cpuHz),
		Prescale: uint32(*prescale),
		Millis:   timebase.PPM(uint32(*millisPPM)),
	}
	if *microsPPM >= 0 {
		cfg.Micros = timebase.PPM(uint32(*microsPPM))
	}
	cfg, err := cfg.Resolved()
	if err != nil {
		return err
	}
	cpu := sim.New(sim.Config{CPUHz: cfg.CPUHz, Prescale: cfg.Prescale})
	clk, err := timebase.NewClock(cfg, cpu, cpu)
	if err != nil {
		return err
	}
	cpu.Attach(clk.Overflow)

	port := &loopback{}
	dev := mcu.New(port)
	epoch := time.Unix(0, 0).UTC()
	dev.SetClock(func() time.Time {
		return epoch.Add(time.Duration(cpu.RealMicros()) * time.Microsecond)
	})

	buf := make([]byte, 0, protocol.FrameMax)
	port.Write(protocol.AppendInfo(buf, deviceInfo(clk)))
	f, err := dev.Next()
	if err != nil {
		return fmt.Errorf("info frame: %w", err)
	}
	fmt.Fprintf(stdout, "device: %s\n", formatInfo(f.Info))

	tracker := drift.NewTracker(drift.Config{
		BudgetPPM:    f.Info.MillisPPM,
		TolerancePPM: uint32(*tolerance),
	})
	wait := clk.RealMillis(uint32(*period))
	for seq := 0; seq < *samples; seq++ {
		start := clk.Millis()
		for clk.Millis()-start < wait {
			cpu.Advance(pollCycles)
		}
		buf = protocol.AppendSample(buf[:0], protocol.Sample{
			Seq:    uint32(seq),
			Millis: clk.Millis(),
			Micros: clk.Micros(),
		})
		port.Write(buf)
		f, err := dev.Next()
		if err != nil {
			return fmt.Errorf("sample %d: %w", seq, err)
		}
		if *verbose {
			fmt.Fprintf(stdout, "%s  seq %d millis %d micros %d\n",
				f.At.Sub(epoch), f.Sample.Seq, f.Sample.Millis, f.Sample.Micros)
		}
		tracker.Add(f.At, f.Sample.Seq, f.Sample.Millis)
	}
	if dev.BadFrames != 0 {
		return fmt.Errorf("%d frames failed to parse", dev.BadFrames)
	}
	return finish(tracker, stdout)
}

func deviceInfo(clk *timebase.Clock) protocol.Info {
	cfg := clk.Config()
	return protocol.Info{
		CPUHz:     cfg.CPUHz,
		Prescale:  cfg.Prescale,
		MillisPPM: clk.MillisScale().ErrPPM,
		MicrosPPM: clk.MicrosScale().ErrPPM,
	}
}

func formatInfo(i protocol.Info) string {
	return fmt.Sprintf("%d Hz, prescale %d, millis %d ppm, micros %d ppm",
		i.CPUHz, i.Prescale, i.MillisPPM, i.MicrosPPM)
}

// finish prints the final report and turns a bad verdict into errDrift.
func finish(tracker *drift.Tracker, stdout io.Writer) error {
	r, err := tracker.Report()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, r)
	if r.Verdict != drift.WithinBudget {
		return errDrift
	}
	return nil
}
