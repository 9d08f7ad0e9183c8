package tarmeta

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidData is returned (wrapped) when a tar entry carries non-UTF-8
// uname/gname or xattr keys/values, or an entry type this format doesn't
// recognize.
var ErrInvalidData = errors.New("tarmeta: invalid data in tar stream")

// xattrPrefix is the PAX extended-header namespace libarchive and GNU tar
// use for extended attributes. Extractor strips it to recover the bare
// attribute name before the caller ever sees it.
const xattrPrefix = "SCHILY.xattr."

// Extractor reads a tar stream and yields one FileMetadata per entry, in
// archive order. It honors PAX extended headers for long names, precise
// mtimes, and extended attributes, the same way pkg/tarfs/parse.go's
// buildTOC drives archive/tar.
type Extractor struct {
	counting *countingReader
	tr       *tar.Reader
}

// NewExtractor wraps r, whose Read calls are counted so each entry's
// UncompressedOffset can be computed precisely from the tar.Reader's
// natural read pattern (it consumes exactly the header blocks needed
// before returning from Next, with no extra read-ahead).
func NewExtractor(r io.Reader) *Extractor {
	cr := &countingReader{r: r}
	return &Extractor{
		counting: cr,
		tr:       tar.NewReader(cr),
	}
}

// Next returns the next entry's metadata, or io.EOF once the archive is
// exhausted. archive/tar.Reader automatically discards any unread payload
// bytes of the previous entry before reading the next header, so callers
// need not read entry contents themselves.
func (x *Extractor) Next() (*FileMetadata, error) {
	h, err := x.tr.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("tarmeta: reading header: %w", err)
	}

	entryType, err := tokenForType(h.Typeflag)
	if err != nil {
		return nil, err
	}

	if !utf8.ValidString(h.Uname) {
		return nil, fmt.Errorf("tarmeta: uname not UTF-8: %w", ErrInvalidData)
	}
	if !utf8.ValidString(h.Gname) {
		return nil, fmt.Errorf("tarmeta: gname not UTF-8: %w", ErrInvalidData)
	}

	xattrs := make(map[string]string)
	for k, v := range h.PAXRecords {
		name, ok := strings.CutPrefix(k, xattrPrefix)
		if !ok {
			continue
		}
		if !utf8.ValidString(name) || !utf8.ValidString(v) {
			return nil, fmt.Errorf("tarmeta: xattr %q not UTF-8: %w", k, ErrInvalidData)
		}
		xattrs[name] = v
	}

	m := &FileMetadata{
		Name:               h.Name,
		Type:               entryType,
		UncompressedOffset: x.counting.n,
		UncompressedSize:   h.Size,
		LinkName:           h.Linkname,
		Mode:               h.Mode,
		UID:                uint32(h.Uid),
		GID:                uint32(h.Gid),
		UserName:           h.Uname,
		HasUserName:        h.Uname != "",
		GroupName:          h.Gname,
		HasGroupName:       h.Gname != "",
		ModTime:            h.ModTime.UTC(),
		XAttrs:             xattrs,
	}
	if entryType == TypeChar || entryType == TypeBlock {
		m.DevMajor = h.Devmajor
		m.DevMinor = h.Devminor
	}
	return m, nil
}

func tokenForType(t byte) (EntryType, error) {
	switch t {
	case tar.TypeReg, tar.TypeRegA:
		return TypeReg, nil
	case tar.TypeLink:
		return TypeHardlink, nil
	case tar.TypeSymlink:
		return TypeSymlink, nil
	case tar.TypeChar:
		return TypeChar, nil
	case tar.TypeBlock:
		return TypeBlock, nil
	case tar.TypeDir:
		return TypeDir, nil
	case tar.TypeFifo:
		return TypeFifo, nil
	default:
		return "", fmt.Errorf("tarmeta: unsupported tar entry type %q: %w", rune(t), ErrInvalidData)
	}
}

// countingReader tracks the total number of bytes delivered through Read,
// giving the Extractor a cheap way to know the current offset into the
// decompressed tar stream without requiring a Seeker.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
