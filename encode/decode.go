package encode

import (
	"fmt"
	"time"

	"github.com/quay/ztoc/internal/ztocfb"
	"github.com/quay/ztoc/tarmeta"
	"github.com/quay/ztoc/ztoc"
)

// Decode reconstructs a ztoc.ZToc from bytes produced by Encode. It exists
// for round-trip tests and any future reader; it is not a seek/consume
// API.
func Decode(buf []byte) (*ztoc.ZToc, error) {
	root := ztocfb.GetRootAsZtoc(buf, 0)

	var fbInfo ztocfb.CompressionInfo
	if root.CompressionInfo(&fbInfo) == nil {
		return nil, fmt.Errorf("decode: missing compression_info")
	}
	digests := make([]string, fbInfo.SpanDigestsLength())
	for i := range digests {
		digests[i] = fbInfo.SpanDigests(i)
	}

	info := ztoc.CompressionInfo{
		Algorithm:   ztoc.CompressionAlgorithm(fbInfo.CompressionAlgorithm()),
		MaxSpanID:   fbInfo.MaxSpanId(),
		SpanDigests: digests,
		Checkpoints: append([]byte(nil), fbInfo.CheckpointsBytes()...),
	}

	var fbTOC ztocfb.TOC
	var toc []tarmeta.FileMetadata
	if root.Toc(&fbTOC) != nil {
		toc = make([]tarmeta.FileMetadata, fbTOC.MetadataLength())
		var fm ztocfb.FileMetadata
		for i := range toc {
			if !fbTOC.Metadata(&fm, i) {
				return nil, fmt.Errorf("decode: entry %d missing", i)
			}
			m, err := decodeFileMetadata(&fm)
			if err != nil {
				return nil, fmt.Errorf("decode: entry %d: %w", i, err)
			}
			toc[i] = m
		}
	}

	return &ztoc.ZToc{
		Version:                 root.Version(),
		BuildToolIdentifier:     root.BuildToolIdentifier(),
		CompressedArchiveSize:   uint64(root.CompressedArchiveSize()),
		UncompressedArchiveSize: uint64(root.UncompressedArchiveSize()),
		TOC:                     toc,
		CompressionInfo:         info,
	}, nil
}

func decodeFileMetadata(fm *ztocfb.FileMetadata) (tarmeta.FileMetadata, error) {
	modTime, err := time.Parse(time.RFC3339, fm.ModTime())
	if err != nil {
		return tarmeta.FileMetadata{}, fmt.Errorf("parsing mod_time %q: %w", fm.ModTime(), err)
	}

	xattrs := make(map[string]string, fm.XattrsLength())
	var x ztocfb.Xattr
	for i := 0; i < fm.XattrsLength(); i++ {
		if !fm.Xattrs(&x, i) {
			continue
		}
		xattrs[x.Key()] = x.Value()
	}

	// Undo the devmajor/devminor swap applied at encode time.
	return tarmeta.FileMetadata{
		Name:               fm.Name(),
		Type:               tarmeta.EntryType(fm.Type()),
		UncompressedOffset: fm.UncompressedOffset(),
		UncompressedSize:   fm.UncompressedSize(),
		LinkName:           fm.Linkname(),
		Mode:               fm.Mode(),
		UID:                fm.Uid(),
		GID:                fm.Gid(),
		UserName:           fm.Uname(),
		HasUserName:        fm.UnameIsPresent(),
		GroupName:          fm.Gname(),
		HasGroupName:       fm.GnameIsPresent(),
		ModTime:            modTime.UTC(),
		DevMajor:           fm.Devminor(),
		DevMinor:           fm.Devmajor(),
		XAttrs:             xattrs,
	}, nil
}
