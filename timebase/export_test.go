package timebase

// SetReadWindow installs fn between the byte reads of c.
func SetReadWindow(c *Counter, fn func()) {
	c.window = fn
}

// SetCount forces the overflow count.
func SetCount(c *Counter, v uint32) {
	c.v = v
}

// LoadUnmasked reads c the way a caller that forgot to mask would.
func LoadUnmasked(c *Counter) uint32 {
	return c.read()
}

// LoopCycles is the cost of one iteration of the AVR Loop.
const LoopCycles = loopCycles
