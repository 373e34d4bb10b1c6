//go:build !(tinygo && avr)

package timebase

var spinSink uint32

// Spin counts loops down. Its cost per iteration depends on the compiler;
// simulators implement Spinner with the modelled cost instead.
//
//go:noinline
func (Loop) Spin(loops uint32) {
	for loops != 0 {
		loops--
		spinSink = loops
	}
}
