package approx

// TimerSteps is the number of timer ticks between two overflows of an
// 8-bit timer.
const TimerSteps = 256

// Profile is the cycle cost model of the delay routine on one instruction
// set.
type Profile struct {
	LoopCycles  uint32 // one decrement-and-branch iteration
	FixedCycles uint32 // entry, threshold compare, subtraction and return
	MulCycles   uint32 // the integer multiply, when Mul > 0
	TermCycles  uint32 // fixed cost of each shift term
	ShiftCycles uint32 // per bit shifted in a shift term
	ISRCycles   uint32 // one run of the overflow interrupt handler
	MaxShift    uint   // deepest shift a ladder or divider may use
	SlackPPM    uint32 // tolerated over-delay from rounding the loop rate up
}

// AVR is the profile of the ATtiny core: a two-word sbiw/brne loop and an
// overflow handler that bumps a 32-bit counter.
//
// Every cost is a lower bound of what the TinyGo build runs: a dearer call
// or handler only lengthens a delay, a cheaper one would make it short. The
// handler is counted at about 107 cycles (vector and reti, SREG and twelve
// call-clobbered registers saved and restored, the dispatch call, the
// 32-bit increment) and modelled as 96. There is no hardware multiplier,
// so the real multiply runs far above MulCycles.
var AVR = Profile{
	LoopCycles:  4,
	FixedCycles: 14,
	MulCycles:   4,
	TermCycles:  3,
	ShiftCycles: 2,
	ISRCycles:   96,
	MaxShift:    16,
	SlackPPM:    1000,
}
