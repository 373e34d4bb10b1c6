package protocol

// LineBuffer is a circular buffer that reassembles lines from a byte
// stream read in arbitrary chunks.
type LineBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
	// Dropped counts bytes discarded because the buffer was full or a
	// line outgrew it.
	Dropped int
}

// NewLineBuffer creates a LineBuffer holding up to capacity-1 bytes.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 2 {
		capacity = 2
	}
	return &LineBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data, dropping what does not fit. When the buffer fills
// without a newline, the partial line is discarded so that reception can
// resynchronize on the next one.
func (f *LineBuffer) Write(data []byte) (int, error) {
	for _, b := range data {
		next := (f.write + 1) % f.size
		if next == f.read {
			if f.indexNewline() < 0 {
				f.Dropped += f.Available()
				f.Reset()
				next = 1
			} else {
				f.Dropped++
				continue
			}
		}
		f.buf[f.write] = b
		f.write = next
	}
	return len(data), nil
}

// Available returns the number of buffered bytes.
func (f *LineBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

func (f *LineBuffer) indexNewline() int {
	for i, p := 0, f.read; p != f.write; i, p = i+1, (p+1)%f.size {
		if f.buf[p] == '\n' {
			return i
		}
	}
	return -1
}

// NextLine removes and returns the oldest complete line, including its
// newline. It copies out of the ring, so the result stays valid.
func (f *LineBuffer) NextLine() ([]byte, bool) {
	n := f.indexNewline()
	if n < 0 {
		return nil, false
	}
	line := make([]byte, n+1)
	for i := range line {
		line[i] = f.buf[f.read]
		f.read = (f.read + 1) % f.size
	}
	return line, true
}

// Reset clears the buffer
func (f *LineBuffer) Reset() {
	f.read = 0
	f.write = 0
}
