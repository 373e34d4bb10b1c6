//go:build !tinygo

package timebase

// disableInterrupts is a no-op on regular Go; host code that needs real
// masking runs against the simulator instead.
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on regular Go
func restoreInterrupts(state State) {
}
