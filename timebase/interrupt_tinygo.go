//go:build tinygo

package timebase

import "runtime/interrupt"

// disableInterrupts clears the global interrupt flag and returns the
// previous status register.
func disableInterrupts() State {
	return State(interrupt.Disable())
}

// restoreInterrupts writes back the saved status register.
func restoreInterrupts(state State) {
	interrupt.Restore(interrupt.State(state))
}
