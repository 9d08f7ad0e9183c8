package ring

import (
	"bytes"
	"testing"
)

// TestWindow mirrors the sequence from the original zinfo RingBuffer tests,
// scaled to this package's fixed Size rather than a parameterized capacity.
func TestWindow(t *testing.T) {
	var w Window
	check := func(name string, wantLeft, wantRight []byte) {
		t.Helper()
		left, right := w.Read()
		if !bytes.Equal(left, wantLeft) || !bytes.Equal(right, wantRight) {
			t.Errorf("%s: got (%d, %d) bytes, want (%d, %d)", name, len(left), len(right), len(wantLeft), len(wantRight))
		}
		if len(left)+len(right) != Size {
			t.Errorf("%s: left+right = %d, want %d", name, len(left)+len(right), Size)
		}
	}

	check("initial", make([]byte, Size), nil)

	w.Write(bytes.Repeat([]byte{1}, 50))
	check("write 50 ones", make([]byte, Size-50), bytes.Repeat([]byte{1}, 50))

	w.Write(bytes.Repeat([]byte{2}, Size-50))
	want := append(bytes.Repeat([]byte{1}, 50), bytes.Repeat([]byte{2}, Size-50)...)
	check("fill to capacity", want, nil)

	w.Write(bytes.Repeat([]byte{3}, Size+100))
	check("overwrite with more than capacity", bytes.Repeat([]byte{3}, Size), nil)
}

// TestWindowSmallSequence exercises the exact numeric sequence from the
// reference implementation's ring-buffer test. It does not use a Window: it
// replays Window's write/read arithmetic on a local 100-byte buffer so the
// wrap-around math stays verifiable by hand.
func TestWindowSmallSequence(t *testing.T) {
	const capacity = 100
	buf := make([]byte, capacity)
	pos := 0

	write := func(b []byte) {
		if len(b) > len(buf) {
			b = b[len(b)-len(buf):]
		}
		for len(b) > 0 {
			n := copy(buf[pos:], b)
			b = b[n:]
			pos = (pos + n) % len(buf)
		}
	}
	read := func() (left, right []byte) {
		return buf[pos:], buf[:pos]
	}
	check := func(name string, wantLeft, wantRight []byte) {
		t.Helper()
		left, right := read()
		if !bytes.Equal(left, wantLeft) || !bytes.Equal(right, wantRight) {
			t.Errorf("%s: got %v/%v want %v/%v", name, left, right, wantLeft, wantRight)
		}
	}

	check("initial", make([]byte, 100), nil)

	write(bytes.Repeat([]byte{1}, 50))
	check("write 50 ones", make([]byte, 50), bytes.Repeat([]byte{1}, 50))

	write(bytes.Repeat([]byte{2}, 50))
	check("write 50 twos", append(bytes.Repeat([]byte{1}, 50), bytes.Repeat([]byte{2}, 50)...), nil)

	write(bytes.Repeat([]byte{3}, 150))
	check("write 150 threes", bytes.Repeat([]byte{3}, 100), nil)

	write(bytes.Repeat([]byte{4}, 75))
	check("write 75 fours", bytes.Repeat([]byte{3}, 25), bytes.Repeat([]byte{4}, 75))
}
