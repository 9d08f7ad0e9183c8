// Package ring implements a fixed-capacity circular byte buffer sized to
// hold a DEFLATE sliding window.
package ring

// Size is the DEFLATE sliding window size: 32 KiB.
const Size = 32768

// Window is a fixed-capacity ring buffer of the last [Size] bytes written to
// it. The zero value is a Window full of zero bytes, ready to use.
//
// It exists to give the gzip index builder a cheap, contiguous-ordered view
// of "the last 32KiB of uncompressed output" regardless of how the
// decompressor's write pattern wraps around the buffer.
type Window struct {
	buf [Size]byte
	pos int
}

// Write appends b to the window, overwriting the oldest bytes once the
// window is full. If b is larger than [Size], only the trailing [Size]
// bytes are kept.
func (w *Window) Write(b []byte) {
	if len(b) == 0 {
		return
	}
	if len(b) > len(w.buf) {
		b = b[len(b)-len(w.buf):]
	}
	for len(b) > 0 {
		n := copy(w.buf[w.pos:], b)
		b = b[n:]
		w.pos = (w.pos + n) % len(w.buf)
	}
}

// Read returns the window contents as two slices, oldest-to-newest, such
// that concatenating left and right yields exactly [Size] bytes.
//
// The returned slices alias the Window's internal storage and are only
// valid until the next call to Write.
func (w *Window) Read() (left, right []byte) {
	return w.buf[w.pos:], w.buf[:w.pos]
}

// Snapshot copies the full, ordered [Size]-byte window into dst, which must
// be at least [Size] bytes long.
func (w *Window) Snapshot(dst []byte) {
	left, right := w.Read()
	n := copy(dst, left)
	copy(dst[n:], right)
}
