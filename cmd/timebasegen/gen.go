package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"tinytime/approx"
	"tinytime/internal/genconfig"
)

type tickEntry struct {
	TickHz         uint32
	Millis, Micros approx.Ladder
}

type dividerEntry struct {
	CPUHz    uint32
	Prescale uint32
	Divider  approx.Divider
}

type tables struct {
	BuildTag string
	Profile  approx.Profile
	Ticks    []tickEntry
	Dividers []dividerEntry
}

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"profile": profileLit,
	"ladder":  ladderLit,
	"divider": dividerLit,
}).Parse(`//go:build {{.BuildTag}}

// Code generated by timebasegen; DO NOT EDIT.

package timebase

import "tinytime/approx"

var tableProfile = {{profile .Profile}}

var tickLadders = [...]tickLadder{
{{- range .Ticks}}
	{TickHz: {{.TickHz}}, Millis: {{ladder .Millis}}, Micros: {{ladder .Micros}}},
{{- end}}
}

var delayDividers = [...]delayDivider{
{{- range .Dividers}}
	{CPUHz: {{.CPUHz}}, Prescale: {{.Prescale}}, Divider: {{divider .Divider}}},
{{- end}}
}
`))

// Build constraints of the two outputs. The firmware image links only the
// entries of its own clock; everything else gets the full set.
const (
	hostTag     = "!(tinygo && avr)"
	firmwareTag = "tinygo && avr"
)

// derive computes every table the configuration asks for. Each CPU gets its
// plain divider under prescale 0, then one adjusted divider per prescale.
func derive(cfg *genconfig.Config) (*tables, error) {
	p := cfg.Profile.ApproxProfile()
	t := &tables{BuildTag: hostTag, Profile: p}

	for _, hz := range cfg.TickRates() {
		ms, err := approx.DeriveLadder(approx.TimerSteps*1000, uint64(hz), p.MaxShift)
		if err != nil {
			return nil, fmt.Errorf("%d Hz millis ladder: %w", hz, err)
		}
		us, err := approx.DeriveLadder(approx.TimerSteps*1000000, uint64(hz), p.MaxShift)
		if err != nil {
			return nil, fmt.Errorf("%d Hz micros ladder: %w", hz, err)
		}
		t.Ticks = append(t.Ticks, tickEntry{TickHz: hz, Millis: ms, Micros: us})
	}

	for _, hz := range cfg.CPUHz {
		d, err := approx.DeriveDivider(uint64(hz), 1, false, p)
		if err != nil {
			return nil, fmt.Errorf("%d Hz plain divider: %w", hz, err)
		}
		t.Dividers = append(t.Dividers, dividerEntry{CPUHz: hz, Divider: d})
		for _, pre := range cfg.Prescales {
			d, err := approx.DeriveDivider(uint64(hz), uint64(pre), true, p)
			if err != nil {
				return nil, fmt.Errorf("%d Hz /%d adjusted divider: %w", hz, pre, err)
			}
			t.Dividers = append(t.Dividers, dividerEntry{CPUHz: hz, Prescale: pre, Divider: d})
		}
	}
	return t, nil
}

// deriveFirmware computes the entries for cfg.Firmware alone: the ladders
// of its tick rate cut at the budgeted rungs, its plain divider and its
// adjusted divider.
func deriveFirmware(cfg *genconfig.Config) (*tables, error) {
	fw := cfg.Firmware
	if fw == nil {
		return nil, fmt.Errorf("config has no firmware section")
	}
	full, err := derive(&genconfig.Config{
		CPUHz:     []uint32{fw.CPUHz},
		Prescales: []uint32{fw.Prescale},
		Profile:   cfg.Profile,
	})
	if err != nil {
		return nil, err
	}

	t := &tables{BuildTag: firmwareTag, Profile: full.Profile}
	for _, e := range full.Ticks {
		if e.TickHz != fw.CPUHz/fw.Prescale {
			continue
		}
		t.Ticks = append(t.Ticks, tickEntry{
			TickHz: e.TickHz,
			Millis: e.Millis.Truncate(fw.MillisPPM),
			Micros: e.Micros.Truncate(fw.MicrosPPM),
		})
	}
	t.Dividers = full.Dividers
	return t, nil
}

// render derives the tables and returns gofmt'ed Go source. With firmware
// set it renders only the firmware clock's entries.
func render(cfg *genconfig.Config, firmware bool) ([]byte, error) {
	var (
		t   *tables
		err error
	)
	if firmware {
		t, err = deriveFirmware(cfg)
	} else {
		t, err = derive(cfg)
	}
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tablesTemplate.Execute(&buf, t); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}
	return src, nil
}

func profileLit(p approx.Profile) string {
	return fmt.Sprintf("approx.Profile{LoopCycles: %d, FixedCycles: %d, MulCycles: %d, TermCycles: %d, ShiftCycles: %d, ISRCycles: %d, MaxShift: %d, SlackPPM: %d}",
		p.LoopCycles, p.FixedCycles, p.MulCycles, p.TermCycles, p.ShiftCycles, p.ISRCycles, p.MaxShift, p.SlackPPM)
}

func ladderLit(l approx.Ladder) string {
	return fmt.Sprintf("approx.Ladder{Mul: %d, Shifts: %s, ErrPPM: %s}", l.Mul, shiftsLit(l.Shifts), ppmLit(l.ErrPPM))
}

func dividerLit(d approx.Divider) string {
	return fmt.Sprintf("approx.Divider{Mul: %d, Shifts: %s, Sub: %d, MinUs: %d, OverheadCycles: %d}",
		d.Mul, shiftsLit(d.Shifts), d.Sub, d.MinUs, d.OverheadCycles)
}

func shiftsLit(s []uint8) string {
	if len(s) == 0 {
		return "nil"
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[]uint8{" + strings.Join(parts, ", ") + "}"
}

func ppmLit(e []uint32) string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return "[]uint32{" + strings.Join(parts, ", ") + "}"
}
