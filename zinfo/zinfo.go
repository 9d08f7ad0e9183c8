// Package zinfo implements the streaming gzip index builder: a single
// forward pass over a compressed byte stream that both yields decompressed
// bytes to a caller and records resumable inflater checkpoints at DEFLATE
// block boundaries.
//
// It is the Go equivalent of the reference implementation's
// GzipZInfoDecompressor (see _examples/original_source/src/zinfo.rs),
// adapted to idiomatic Go: an io.Reader that side-effects a ZInfo as it's
// drained.
package zinfo

import "github.com/quay/ztoc/ring"

// Version is the on-wire ZInfo format version this package produces.
const Version = 2

// Checkpoint is a resumption point for DEFLATE inflation: a byte offset
// into the compressed stream, the corresponding uncompressed byte offset,
// the bit-residue of the byte at InOffset, and the 32KiB sliding window
// needed to resume inflation from here.
type Checkpoint struct {
	InOffset  uint64
	OutOffset uint64
	Bits      uint8 // low 3 bits only; 0..=7
	Window    [ring.Size]byte
}

// ZInfo is the in-memory compression index: totals plus an ordered list of
// Checkpoints, one roughly every SpanSize uncompressed bytes.
type ZInfo struct {
	Version     int
	SpanSize    uint64
	TotalIn     uint64
	TotalOut    uint64
	Checkpoints []Checkpoint
}
