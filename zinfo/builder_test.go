package zinfo

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func gzipOf(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func drain(t *testing.T, b *Builder) []byte {
	t.Helper()
	var out bytes.Buffer
	buf := make([]byte, 1<<14)
	for {
		n, err := b.Read(buf)
		out.Write(buf[:n])
		if err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("Read: %v", err)
		}
		if b.Done() {
			break
		}
	}
	return out.Bytes()
}

// TestBuilderRoundTrip checks decompressed output matches the input exactly
// and that the checkpoint invariants hold.
func TestBuilderRoundTrip(t *testing.T) {
	want := bytes.Repeat([]byte("gzip index builder test payload "), 4096)
	compressed := gzipOf(t, want)

	b, err := NewBuilder(bytes.NewReader(compressed), 4096)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	defer b.Close()

	got := drain(t, b)
	if !bytes.Equal(got, want) {
		t.Fatalf("decompressed mismatch: got %d bytes, want %d", len(got), len(want))
	}

	info := b.ZInfo()
	if info.Version != 2 {
		t.Errorf("version = %d, want 2", info.Version)
	}
	if info.TotalOut != uint64(len(want)) {
		t.Errorf("TotalOut = %d, want %d", info.TotalOut, len(want))
	}
	if info.TotalIn != uint64(len(compressed)) {
		t.Errorf("TotalIn = %d, want %d", info.TotalIn, len(compressed))
	}

	for i, cp := range info.Checkpoints {
		if cp.Bits > 7 {
			t.Errorf("checkpoint %d: bits = %d, want 0..=7", i, cp.Bits)
		}
		if i == 0 {
			continue
		}
		prev := info.Checkpoints[i-1]
		if cp.InOffset <= prev.InOffset {
			t.Errorf("checkpoint %d: in_offset %d not > previous %d", i, cp.InOffset, prev.InOffset)
		}
		if cp.OutOffset-prev.OutOffset < info.SpanSize {
			t.Errorf("checkpoint %d: out_offset delta %d < span_size %d", i, cp.OutOffset-prev.OutOffset, info.SpanSize)
		}
	}
}

// TestBuilderAllZero checks that a 1MiB all-zero stream with
// span_size=4096 produces exactly one checkpoint, taken at the first
// eligible block boundary.
func TestBuilderAllZero(t *testing.T) {
	want := make([]byte, 1<<20)
	compressed := gzipOf(t, want)

	b, err := NewBuilder(bytes.NewReader(compressed), 4096)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	defer b.Close()

	got := drain(t, b)
	if !bytes.Equal(got, want) {
		t.Fatalf("decompressed mismatch: got %d bytes, want %d", len(got), len(want))
	}

	info := b.ZInfo()
	if info.TotalOut != 1<<20 {
		t.Errorf("TotalOut = %d, want %d", info.TotalOut, 1<<20)
	}
	if len(info.Checkpoints) != 1 {
		t.Errorf("len(Checkpoints) = %d, want 1", len(info.Checkpoints))
	}
}

// TestBuilderUnexpectedEOF checks that a truncated gzip stream fails with
// ErrUnexpectedEOF rather than silently returning a partial result.
func TestBuilderUnexpectedEOF(t *testing.T) {
	compressed := gzipOf(t, bytes.Repeat([]byte("x"), 1<<16))
	truncated := compressed[:len(compressed)/2]

	b, err := NewBuilder(bytes.NewReader(truncated), 4096)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	defer b.Close()

	buf := make([]byte, 1<<14)
	var lastErr error
	for {
		_, err := b.Read(buf)
		if err != nil {
			lastErr = err
			break
		}
		if b.Done() {
			break
		}
	}
	if !errors.Is(lastErr, ErrUnexpectedEOF) {
		t.Fatalf("error on truncated input = %v, want ErrUnexpectedEOF", lastErr)
	}
}
