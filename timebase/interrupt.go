package timebase

// State is the saved interrupt-enable state returned by Disable.
type State uintptr

// Interrupts is the only mutual-exclusion primitive on the target: masking
// the single timer interrupt. Restore must put back exactly the state
// Disable saved, never enable unconditionally.
type Interrupts interface {
	Disable() State
	Restore(State)
}

// CPU masks interrupts on the running processor.
type CPU struct{}

func (CPU) Disable() State {
	return disableInterrupts()
}

func (CPU) Restore(s State) {
	restoreInterrupts(s)
}
