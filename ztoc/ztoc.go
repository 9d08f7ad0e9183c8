// Package ztoc holds the ZToc data model and orchestrates the streaming
// pipeline (zinfo.Builder feeding tarmeta.Extractor) that produces one, the
// way pkg/tarfs.New drives its own tar-header pass over a layer.
package ztoc

import (
	"encoding/binary"
	"fmt"

	"github.com/quay/ztoc/ring"
	"github.com/quay/ztoc/tarmeta"
	"github.com/quay/ztoc/zinfo"
)

// SchemaVersion is the ZToc.version field. It identifies the wire format,
// not this module's release.
const SchemaVersion = "0.9"

// CompressionAlgorithm is the schema's CompressionAlgorithm enum. Gzip is
// the only member; the type exists so Encode has somewhere type-safe to
// read it from.
type CompressionAlgorithm int32

// Gzip is the only defined CompressionAlgorithm, enum value 0 in the
// flatbuffer schema.
const Gzip CompressionAlgorithm = 0

// CompressionInfo is the on-wire view of a zinfo.ZInfo: the same
// checkpoints, reduced to what a consumer needs to resume inflation at an
// arbitrary span plus a digest per span for integrity checking.
type CompressionInfo struct {
	Algorithm   CompressionAlgorithm
	MaxSpanID   int32
	SpanDigests []string
	Checkpoints []byte // packed blob, see EncodeCheckpoints
}

// ZToc is the root record: archive sizes, the file table, and the
// compression index, assembled once per pipeline run and never mutated.
type ZToc struct {
	Version                 string
	BuildToolIdentifier     string
	CompressedArchiveSize   uint64
	UncompressedArchiveSize uint64
	TOC                     []tarmeta.FileMetadata
	CompressionInfo         CompressionInfo
}

// checkpointRecordSize is 8 (in_offset) + 8 (out_offset) + 1 (bits) +
// 32768 (window).
const checkpointRecordSize = 8 + 8 + 1 + ring.Size

// EncodeCheckpoints packs a ZInfo's checkpoints into the blob layout
// CompressionInfo.checkpoints carries: a uint32 count, a uint64 span size,
// then one fixed-size record per checkpoint.
func EncodeCheckpoints(info zinfo.ZInfo) []byte {
	n := len(info.Checkpoints)
	buf := make([]byte, 4+8+n*checkpointRecordSize)

	binary.LittleEndian.PutUint32(buf[0:4], uint32(n))
	binary.LittleEndian.PutUint64(buf[4:12], info.SpanSize)

	off := 12
	for _, cp := range info.Checkpoints {
		binary.LittleEndian.PutUint64(buf[off:off+8], cp.InOffset)
		binary.LittleEndian.PutUint64(buf[off+8:off+16], cp.OutOffset)
		buf[off+16] = cp.Bits & 7
		copy(buf[off+17:off+17+ring.Size], cp.Window[:])
		off += checkpointRecordSize
	}
	return buf
}

// DecodeCheckpoints unpacks a blob produced by EncodeCheckpoints. The blob
// carries no totals, so TotalIn and TotalOut are set from the last
// checkpoint's offsets rather than the archive's real sizes. It is not a
// consumer-facing seek API.
func DecodeCheckpoints(blob []byte) (zinfo.ZInfo, error) {
	if len(blob) < 12 {
		return zinfo.ZInfo{}, fmt.Errorf("ztoc: checkpoints blob too short: %d bytes", len(blob))
	}
	n := binary.LittleEndian.Uint32(blob[0:4])
	spanSize := binary.LittleEndian.Uint64(blob[4:12])

	want := 12 + int(n)*checkpointRecordSize
	if len(blob) != want {
		return zinfo.ZInfo{}, fmt.Errorf("ztoc: checkpoints blob length %d, want %d for %d records", len(blob), want, n)
	}

	out := zinfo.ZInfo{Version: zinfo.Version, SpanSize: spanSize}
	off := 12
	for i := uint32(0); i < n; i++ {
		var cp zinfo.Checkpoint
		cp.InOffset = binary.LittleEndian.Uint64(blob[off : off+8])
		cp.OutOffset = binary.LittleEndian.Uint64(blob[off+8 : off+16])
		cp.Bits = blob[off+16] & 7
		copy(cp.Window[:], blob[off+17:off+17+ring.Size])
		out.Checkpoints = append(out.Checkpoints, cp)
		off += checkpointRecordSize
	}
	if n > 0 {
		out.TotalOut = out.Checkpoints[n-1].OutOffset
		out.TotalIn = out.Checkpoints[n-1].InOffset
	}
	return out, nil
}
