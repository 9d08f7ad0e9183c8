package zinflate

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestEngineRoundTrip feeds a small gzip stream through the engine one
// input chunk at a time and checks the decompressed bytes match, exercising
// the same avail_in/avail_out bookkeeping the zinfo builder relies on.
func TestEngineRoundTrip(t *testing.T) {
	want := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 200)
	compressed := gzipBytes(t, want)

	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()

	var got bytes.Buffer
	in := compressed
	out := make([]byte, 4096)

	for {
		e.BindOutput(out)
	inner:
		for e.AvailOut() > 0 {
			if e.AvailIn() == 0 {
				chunk := in
				if len(chunk) > 64 {
					chunk = chunk[:64]
				}
				e.BindInput(chunk)
				in = in[len(chunk):]
			}
			preIn, preOut := e.AvailIn(), e.AvailOut()
			status, err := e.Step()
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			produced := preOut - e.AvailOut()
			consumed := preIn - e.AvailIn()
			_ = consumed
			got.Write(out[len(out)-preOut : len(out)-preOut+produced])
			if status == StatusStreamEnd {
				break inner
			}
			if e.AvailIn() == 0 && len(in) == 0 {
				// Drained all input but the stream hasn't ended; loop
				// again to let inflate consume internal buffering.
				continue
			}
		}
		if got.Len() >= len(want) {
			break
		}
	}

	if !bytes.Equal(got.Bytes(), want) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", got.Len(), len(want))
	}
}

func TestErrorFormatting(t *testing.T) {
	e := &Error{Code: -3, Msg: "incorrect header check"}
	if got := e.Error(); got == "" {
		t.Fatal("empty error string")
	}
	e2 := &Error{Code: -3}
	if got := e2.Error(); got == "" {
		t.Fatal("empty error string")
	}
}

var _ io.Closer = (*Engine)(nil)
