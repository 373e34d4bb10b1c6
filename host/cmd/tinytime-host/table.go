package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"tinytime/approx"
	"tinytime/timebase"
)

var prescales = []uint32{1, 8, 64}

func table(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("table", stderr)
	cpuHz := fs.Uint("cpu", 0, "only this CPU clock in Hz (0 = all)")
	prescale := fs.Uint("prescale", 0, "only this timer prescale (0 = all)")
	budget := fs.Int("budget", -1, "show only the rung selected for this error budget in ppm")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ticks, err := tickRates(uint32(*cpuHz), uint32(*prescale))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "TICK HZ\tSCALE\tRUNG\tMUL\tSHIFTS\tERR PPM")
	for _, hz := range ticks {
		millis, micros, _ := timebase.Ladders(hz)
		for _, l := range []struct {
			name   string
			ladder approx.Ladder
		}{{"millis", millis}, {"micros", micros}} {
			for i := 0; i < l.ladder.Rungs(); i++ {
				s := l.ladder.Rung(i)
				if *budget >= 0 && !sameRung(s, l.ladder.Select(uint32(*budget))) {
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%d\n", hz, l.name, i, s.Mul, shiftList(s.Shifts), s.ErrPPM)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	tw = tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CPU HZ\tDELAY\tMUL\tSHIFTS\tSUB\tMIN US")
	for _, hz := range timebase.CPUFrequencies() {
		if *cpuHz != 0 && uint32(*cpuHz) != hz {
			continue
		}
		for _, p := range append([]uint32{0}, prescales...) {
			if p != 0 && *prescale != 0 && uint32(*prescale) != p {
				continue
			}
			d, ok := timebase.DividerFor(hz, p)
			if !ok {
				continue
			}
			mode := "plain"
			if p != 0 {
				mode = "adjusted /" + strconv.FormatUint(uint64(p), 10)
			}
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%d\n", hz, mode, d.Mul, shiftList(d.Shifts), d.Sub, d.MinUs)
		}
	}
	return tw.Flush()
}

// tickRates lists the tick rates to print: all of them, or those cpuHz
// reaches through the selected prescales.
func tickRates(cpuHz, prescale uint32) ([]uint32, error) {
	if cpuHz == 0 {
		return timebase.TickRates(), nil
	}
	var out []uint32
	for _, p := range prescales {
		if prescale != 0 && prescale != p {
			continue
		}
		if hz, ok := (timebase.Config{CPUHz: cpuHz, Prescale: p}).TickHz(); ok {
			out = append(out, hz)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%d Hz: %w", cpuHz, timebase.ErrUnsupportedFrequency)
	}
	return out, nil
}

func sameRung(a, b approx.Scale) bool {
	return a.Mul == b.Mul && len(a.Shifts) == len(b.Shifts) && a.ErrPPM == b.ErrPPM
}

func shiftList(shifts []uint8) string {
	if len(shifts) == 0 {
		return "-"
	}
	parts := make([]string, len(shifts))
	for i, s := range shifts {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}
