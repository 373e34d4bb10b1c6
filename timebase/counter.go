package timebase

// Counter is the overflow count shared between the timer interrupt and
// normal code. Only the interrupt handler calls Overflow; everything else
// reads through Load, which masks interrupts for the multi-byte read.
//
// The count wraps silently at 2^32 overflows.
type Counter struct {
	v   uint32
	irq Interrupts
	// window runs between byte reads, where an unmasked 8-bit core could
	// take the overflow interrupt. Nil on hardware.
	window func()
}

// NewCounter returns a zeroed counter masked through irq.
func NewCounter(irq Interrupts) *Counter {
	if irq == nil {
		irq = CPU{}
	}
	return &Counter{irq: irq}
}

// Overflow is the body of the timer overflow handler.
func (c *Counter) Overflow() {
	c.v++
}

// Load returns a torn-free snapshot of the count.
func (c *Counter) Load() uint32 {
	state := c.irq.Disable()
	defer c.irq.Restore(state)
	return c.read()
}

// read assembles the count one byte at a time, high byte first, the way an
// 8-bit core sees it. Callers must hold interrupts off.
func (c *Counter) read() uint32 {
	var v uint32
	for i := 3; i >= 0; i-- {
		shift := uint(i) * 8
		v |= uint32(uint8(c.v>>shift)) << shift
		if i > 0 && c.window != nil {
			c.window()
		}
	}
	return v
}
