// Package genconfig loads the table generator's input: which CPU clocks and
// prescales get tables, and the cycle costs the tables are derived from.
package genconfig

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"tinytime/approx"
)

type Config struct {
	CPUHz     []uint32      `yaml:"cpu_hz"`
	Prescales []uint32      `yaml:"prescales"`
	Profile   ProfileConfig `yaml:"profile"`
	// Firmware is the one clock the device image is built for. Without it
	// only the full host tables can be generated.
	Firmware *FirmwareConfig `yaml:"firmware"`
}

// FirmwareConfig selects the table entries linked into the device image.
// The ppm budgets pick the rung the same way timebase.Config does.
type FirmwareConfig struct {
	CPUHz     uint32 `yaml:"cpu_hz"`
	Prescale  uint32 `yaml:"prescale"`
	MillisPPM uint32 `yaml:"millis_ppm"`
	MicrosPPM uint32 `yaml:"micros_ppm"`
}

type ProfileConfig struct {
	LoopCycles  uint32 `yaml:"loop_cycles"`
	FixedCycles uint32 `yaml:"fixed_cycles"`
	MulCycles   uint32 `yaml:"mul_cycles"`
	TermCycles  uint32 `yaml:"term_cycles"`
	ShiftCycles uint32 `yaml:"shift_cycles"`
	ISRCycles   uint32 `yaml:"isr_cycles"`
	MaxShift    uint   `yaml:"max_shift"`
	SlackPPM    uint32 `yaml:"slack_ppm"`
}

// Load reads and parses the YAML file at path. It does not validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document, rejecting unknown keys.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration without changing it.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if len(cfg.CPUHz) == 0 {
		return fmt.Errorf("cpu_hz: at least one frequency is required")
	}
	for i, hz := range cfg.CPUHz {
		if hz == 0 {
			return fmt.Errorf("cpu_hz[%d]: must be positive", i)
		}
		if i > 0 && hz <= cfg.CPUHz[i-1] {
			return fmt.Errorf("cpu_hz[%d]: %d must be above %d", i, hz, cfg.CPUHz[i-1])
		}
	}

	if len(cfg.Prescales) == 0 {
		return fmt.Errorf("prescales: at least one prescale is required")
	}
	seen := make(map[uint32]bool)
	for i, p := range cfg.Prescales {
		if p == 0 {
			return fmt.Errorf("prescales[%d]: must be positive", i)
		}
		if seen[p] {
			return fmt.Errorf("prescales[%d]: duplicate prescale %d", i, p)
		}
		seen[p] = true
		if uint64(approx.TimerSteps)*uint64(p) <= uint64(cfg.Profile.ISRCycles) {
			return fmt.Errorf("prescales[%d]: isr_cycles %d fill the whole %d-cycle overflow period",
				i, cfg.Profile.ISRCycles, approx.TimerSteps*p)
		}
	}

	if err := validateFirmware(cfg); err != nil {
		return err
	}

	p := cfg.Profile
	switch {
	case p.LoopCycles == 0:
		return fmt.Errorf("profile.loop_cycles: must be positive")
	case p.MaxShift == 0 || p.MaxShift > 31:
		return fmt.Errorf("profile.max_shift: %d outside 1..31", p.MaxShift)
	case p.SlackPPM >= approx.PPMScale:
		return fmt.Errorf("profile.slack_ppm: %d must be below %d", p.SlackPPM, approx.PPMScale)
	}
	return nil
}

func validateFirmware(cfg *Config) error {
	fw := cfg.Firmware
	if fw == nil {
		return nil
	}
	if !slices.Contains(cfg.CPUHz, fw.CPUHz) {
		return fmt.Errorf("firmware.cpu_hz: %d is not in cpu_hz", fw.CPUHz)
	}
	if !slices.Contains(cfg.Prescales, fw.Prescale) {
		return fmt.Errorf("firmware.prescale: %d is not in prescales", fw.Prescale)
	}
	if fw.CPUHz%fw.Prescale != 0 {
		return fmt.Errorf("firmware: %d Hz does not divide by %d", fw.CPUHz, fw.Prescale)
	}
	if fw.MillisPPM > approx.PPMScale || fw.MicrosPPM > approx.PPMScale {
		return fmt.Errorf("firmware: ppm budgets must not exceed %d", approx.PPMScale)
	}
	return nil
}

// ApproxProfile converts the YAML profile to the derivation's type.
func (p ProfileConfig) ApproxProfile() approx.Profile {
	return approx.Profile{
		LoopCycles:  p.LoopCycles,
		FixedCycles: p.FixedCycles,
		MulCycles:   p.MulCycles,
		TermCycles:  p.TermCycles,
		ShiftCycles: p.ShiftCycles,
		ISRCycles:   p.ISRCycles,
		MaxShift:    p.MaxShift,
		SlackPPM:    p.SlackPPM,
	}
}

// TickRates returns every exact cpu/prescale quotient, ascending and
// without duplicates.
func (c *Config) TickRates() []uint32 {
	set := make(map[uint32]bool)
	for _, hz := range c.CPUHz {
		for _, p := range c.Prescales {
			if hz%p == 0 {
				set[hz/p] = true
			}
		}
	}
	out := make([]uint32, 0, len(set))
	for hz := range set {
		out = append(out, hz)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
