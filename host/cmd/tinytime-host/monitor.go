package main

import (
	"errors"
	"fmt"
	"io"

	"tinytime/host/drift"
	"tinytime/host/mcu"
	"tinytime/host/serial"
	"tinytime/protocol"
	"tinytime/timebase"
)

type frameSource interface {
	Next() (mcu.Frame, error)
}

// firmwareBaud is the rate the ATtiny85 firmware transmits at.
const firmwareBaud = 9600

type monitorOptions struct {
	samples   int
	every     int
	budget    uint32
	tolerance uint32
	timeouts  int
	verbose   bool
}

func monitor(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("monitor", stderr)
	device := fs.String("device", "/dev/ttyUSB0", "Serial device path")
	baud := fs.Int("baud", firmwareBaud, "Baud rate of the device's TX pin")
	samples := fs.Int("samples", 0, "stop after this many samples (0 = run until the device goes silent)")
	every := fs.Int("every", 10, "print a report every this many samples")
	budget := fs.Uint("budget", 0, "millis error budget in ppm (0 = from the device's info frame)")
	tolerance := fs.Uint("tolerance", 20000, "drift tolerance in ppm beyond the budget, covering the oscillator")
	timeouts := fs.Int("timeouts", 20, "give up after this many read timeouts in a row")
	verbose := fs.Bool("verbose", false, "print every frame")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dev, err := mcu.Connect(serial.DefaultConfig(*device, *baud))
	if err != nil {
		return err
	}
	defer dev.Close()
	fmt.Fprintf(stdout, "Monitoring %s at %d baud\n", *device, *baud)

	err = watch(dev, monitorOptions{
		samples:   *samples,
		every:     *every,
		budget:    uint32(*budget),
		tolerance: uint32(*tolerance),
		timeouts:  *timeouts,
		verbose:   *verbose,
	}, stdout)
	if dev.BadFrames != 0 || dev.Dropped() != 0 {
		fmt.Fprintf(stdout, "%d bad frames, %d bytes dropped\n", dev.BadFrames, dev.Dropped())
	}
	return err
}

// watch feeds sample frames into a tracker. An info frame or a sequence
// number going backwards means the device restarted, and measurement
// starts over.
func watch(src frameSource, opts monitorOptions, stdout io.Writer) error {
	// Until an info frame names the budget, only fast drift is flagged.
	budget := opts.budget
	if budget == 0 {
		budget = timebase.LoosestPPM
	}
	newTracker := func() *drift.Tracker {
		return drift.NewTracker(drift.Config{BudgetPPM: budget, TolerancePPM: opts.tolerance})
	}
	tracker := newTracker()
	var (
		lastSeq uint32
		taken   int
		idle    int
	)
	for opts.samples == 0 || taken < opts.samples {
		f, err := src.Next()
		if errors.Is(err, mcu.ErrTimeout) {
			idle++
			if idle >= opts.timeouts {
				if tracker.Len() >= 2 {
					return finish(tracker, stdout)
				}
				return fmt.Errorf("device silent after %d read timeouts", idle)
			}
			continue
		}
		if err != nil {
			return err
		}
		idle = 0

		switch f.Kind {
		case protocol.KindInfo:
			fmt.Fprintf(stdout, "device: %s\n", formatInfo(f.Info))
			if opts.budget == 0 {
				budget = f.Info.MillisPPM
			}
			tracker = newTracker()
		case protocol.KindSample:
			if tracker.Len() > 0 && f.Sample.Seq < lastSeq {
				fmt.Fprintln(stdout, "device restarted")
				tracker = newTracker()
			}
			lastSeq = f.Sample.Seq
			tracker.Add(f.At, f.Sample.Seq, f.Sample.Millis)
			taken++
			if opts.verbose {
				fmt.Fprintf(stdout, "seq %d millis %d micros %d\n", f.Sample.Seq, f.Sample.Millis, f.Sample.Micros)
			}
			if opts.every > 0 && tracker.Len() >= 2 && tracker.Len()%opts.every == 0 {
				if r, err := tracker.Report(); err == nil {
					fmt.Fprintln(stdout, r)
				}
			}
		}
	}
	return finish(tracker, stdout)
}
