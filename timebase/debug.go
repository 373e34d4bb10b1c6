package timebase

// DebugWriter receives diagnostic lines.
type DebugWriter func(string)

var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter routes diagnostics to w, typically a serial port. Nil
// silences them.
func SetDebugWriter(w DebugWriter) {
	if w == nil {
		w = func(string) {}
	}
	debugPrintln = w
}

func debugLine(s string) {
	debugPrintln(s)
}
