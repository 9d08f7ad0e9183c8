// Package encode serializes a ztoc.ZToc into the FlatBuffers wire format
// defined by internal/ztocfb, and reads one back. It is the one place that
// knows about both the domain model and the schema's encoding quirks (the
// devmajor/devminor swap, absent-vs-empty uname/gname, UTF-8 enforcement).
package encode

import (
	"fmt"
	"time"
	"unicode/utf8"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/quay/ztoc/internal/ztocfb"
	"github.com/quay/ztoc/tarmeta"
	"github.com/quay/ztoc/ztoc"
)

// initialBufferSize is a rough guess at the finished buffer size, sized to
// avoid a handful of early reallocations for a typical container layer;
// the builder grows past it without issue for larger ones.
const initialBufferSize = 1 << 16

// Encode serializes z into the Ztoc FlatBuffers wire format.
func Encode(z *ztoc.ZToc) ([]byte, error) {
	b := flatbuffers.NewBuilder(initialBufferSize)

	metaOffsets := make([]flatbuffers.UOffsetT, len(z.TOC))
	for i := len(z.TOC) - 1; i >= 0; i-- {
		off, err := encodeFileMetadata(b, &z.TOC[i])
		if err != nil {
			return nil, fmt.Errorf("encode: entry %d (%q): %w", i, z.TOC[i].Name, err)
		}
		metaOffsets[i] = off
	}
	ztocfb.TOCStartMetadataVector(b, len(metaOffsets))
	for i := len(metaOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(metaOffsets[i])
	}
	metaVec := b.EndVector(len(metaOffsets))

	ztocfb.TOCStart(b)
	ztocfb.TOCAddMetadata(b, metaVec)
	tocOffset := ztocfb.TOCEnd(b)

	digestOffsets := make([]flatbuffers.UOffsetT, len(z.CompressionInfo.SpanDigests))
	for i := len(digestOffsets) - 1; i >= 0; i-- {
		digestOffsets[i] = b.CreateString(z.CompressionInfo.SpanDigests[i])
	}
	ztocfb.CompressionInfoStartSpanDigestsVector(b, len(digestOffsets))
	for i := len(digestOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(digestOffsets[i])
	}
	digestsVec := b.EndVector(len(digestOffsets))

	checkpointsVec := b.CreateByteVector(z.CompressionInfo.Checkpoints)

	ztocfb.CompressionInfoStart(b)
	ztocfb.CompressionInfoAddCompressionAlgorithm(b, ztocfb.CompressionAlgorithm(z.CompressionInfo.Algorithm))
	ztocfb.CompressionInfoAddMaxSpanId(b, z.CompressionInfo.MaxSpanID)
	ztocfb.CompressionInfoAddSpanDigests(b, digestsVec)
	ztocfb.CompressionInfoAddCheckpoints(b, checkpointsVec)
	infoOffset := ztocfb.CompressionInfoEnd(b)

	versionOffset := b.CreateString(z.Version)
	buildToolOffset := b.CreateString(z.BuildToolIdentifier)

	ztocfb.ZtocStart(b)
	ztocfb.ZtocAddVersion(b, versionOffset)
	ztocfb.ZtocAddBuildToolIdentifier(b, buildToolOffset)
	ztocfb.ZtocAddCompressedArchiveSize(b, int64(z.CompressedArchiveSize))
	ztocfb.ZtocAddUncompressedArchiveSize(b, int64(z.UncompressedArchiveSize))
	ztocfb.ZtocAddToc(b, tocOffset)
	ztocfb.ZtocAddCompressionInfo(b, infoOffset)
	root := ztocfb.ZtocEnd(b)

	b.Finish(root)
	return b.FinishedBytes(), nil
}

func encodeFileMetadata(b *flatbuffers.Builder, m *tarmeta.FileMetadata) (flatbuffers.UOffsetT, error) {
	if !utf8.ValidString(m.Name) {
		return 0, fmt.Errorf("name not valid UTF-8")
	}
	if !utf8.ValidString(m.LinkName) {
		return 0, fmt.Errorf("linkname not valid UTF-8")
	}

	xattrOffsets := make([]flatbuffers.UOffsetT, 0, len(m.XAttrs))
	for k, v := range m.XAttrs {
		if !utf8.ValidString(k) || !utf8.ValidString(v) {
			return 0, fmt.Errorf("xattr %q not valid UTF-8", k)
		}
		keyOff := b.CreateString(k)
		valOff := b.CreateString(v)
		ztocfb.XattrStart(b)
		ztocfb.XattrAddKey(b, keyOff)
		ztocfb.XattrAddValue(b, valOff)
		xattrOffsets = append(xattrOffsets, ztocfb.XattrEnd(b))
	}
	ztocfb.FileMetadataStartXattrsVector(b, len(xattrOffsets))
	for i := len(xattrOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(xattrOffsets[i])
	}
	xattrsVec := b.EndVector(len(xattrOffsets))

	nameOff := b.CreateString(m.Name)
	typeOff := b.CreateString(string(m.Type))
	linkOff := b.CreateString(m.LinkName)
	modTimeOff := b.CreateString(m.ModTime.UTC().Format(time.RFC3339))

	var unameOff, gnameOff flatbuffers.UOffsetT
	if m.HasUserName {
		if !utf8.ValidString(m.UserName) {
			return 0, fmt.Errorf("uname not valid UTF-8")
		}
		unameOff = b.CreateString(m.UserName)
	}
	if m.HasGroupName {
		if !utf8.ValidString(m.GroupName) {
			return 0, fmt.Errorf("gname not valid UTF-8")
		}
		gnameOff = b.CreateString(m.GroupName)
	}

	ztocfb.FileMetadataStart(b)
	ztocfb.FileMetadataAddName(b, nameOff)
	ztocfb.FileMetadataAddType(b, typeOff)
	ztocfb.FileMetadataAddUncompressedOffset(b, m.UncompressedOffset)
	ztocfb.FileMetadataAddUncompressedSize(b, m.UncompressedSize)
	ztocfb.FileMetadataAddLinkname(b, linkOff)
	ztocfb.FileMetadataAddMode(b, m.Mode)
	ztocfb.FileMetadataAddUid(b, m.UID)
	ztocfb.FileMetadataAddGid(b, m.GID)
	if m.HasUserName {
		ztocfb.FileMetadataAddUname(b, unameOff)
	}
	if m.HasGroupName {
		ztocfb.FileMetadataAddGname(b, gnameOff)
	}
	ztocfb.FileMetadataAddModTime(b, modTimeOff)
	// The SOCI wire format swaps devmajor/devminor at the encoder boundary;
	// preserved exactly since any "fix" would break the consumer.
	ztocfb.FileMetadataAddDevmajor(b, m.DevMinor)
	ztocfb.FileMetadataAddDevminor(b, m.DevMajor)
	ztocfb.FileMetadataAddXattrs(b, xattrsVec)
	return ztocfb.FileMetadataEnd(b), nil
}
