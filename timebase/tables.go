package timebase

import "tinytime/approx"

type tickLadder struct {
	TickHz uint32
	Millis approx.Ladder
	Micros approx.Ladder
}

// delayDivider is keyed by CPU clock; Prescale 0 is the interrupt-oblivious
// divider, any other value the divider adjusted for the overflow handler
// at that prescale.
type delayDivider struct {
	CPUHz    uint32
	Prescale uint32
	Divider  approx.Divider
}

func findLadders(tickHz uint32) (tickLadder, bool) {
	for _, t := range tickLadders {
		if t.TickHz == tickHz {
			return t, true
		}
	}
	return tickLadder{}, false
}

func findDivider(cpuHz, prescale uint32) (approx.Divider, bool) {
	for _, d := range delayDividers {
		if d.CPUHz == cpuHz && d.Prescale == prescale {
			return d.Divider, true
		}
	}
	return approx.Divider{}, false
}

// TableProfile returns the cycle profile the generated tables were derived
// with.
func TableProfile() approx.Profile {
	return tableProfile
}

// TickRates lists every supported timer tick rate in ascending order.
func TickRates() []uint32 {
	out := make([]uint32, 0, len(tickLadders))
	for _, t := range tickLadders {
		out = append(out, t.TickHz)
	}
	return out
}

// CPUFrequencies lists every CPU clock with delay tables, ascending.
func CPUFrequencies() []uint32 {
	var out []uint32
	for _, d := range delayDividers {
		if d.Prescale == 0 {
			out = append(out, d.CPUHz)
		}
	}
	return out
}

// Ladders returns the millis and micros ladders for a tick rate.
func Ladders(tickHz uint32) (millis, micros approx.Ladder, ok bool) {
	t, ok := findLadders(tickHz)
	return t.Millis, t.Micros, ok
}

// DividerFor returns the delay divider for a CPU clock. Prescale 0 selects
// the interrupt-oblivious divider.
func DividerFor(cpuHz, prescale uint32) (approx.Divider, bool) {
	return findDivider(cpuHz, prescale)
}
