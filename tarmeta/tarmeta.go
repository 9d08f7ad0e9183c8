// Package tarmeta extracts per-entry metadata from a tar stream, the way
// pkg/tarfs/parse.go turns tar headers into a table of contents, but
// producing the richer per-entry record a ZToc needs (PAX xattrs, device
// numbers, and an exact payload offset) rather than a filesystem-ready
// inode.
package tarmeta

import "time"

// EntryType is the wire-level token for a tar entry's kind, per the ZToc
// flatbuffer schema's FileMetadata.type field.
type EntryType string

// The fixed set of entry-type tokens the schema accepts. Any tar type not
// in this set is a fatal error (see Extractor.Next).
const (
	TypeReg      EntryType = "reg"
	TypeHardlink EntryType = "hardlink"
	TypeSymlink  EntryType = "symlink"
	TypeChar     EntryType = "char"
	TypeBlock    EntryType = "block"
	TypeDir      EntryType = "dir"
	TypeFifo     EntryType = "fifo"
)

// FileMetadata is one record per tar entry.
type FileMetadata struct {
	Name               string
	Type               EntryType
	UncompressedOffset int64
	UncompressedSize   int64
	LinkName           string // always present; empty string when absent
	Mode               int64
	UID                uint32
	GID                uint32
	UserName           string
	HasUserName        bool
	GroupName          string
	HasGroupName       bool
	ModTime            time.Time
	DevMajor           int64 // only meaningful when Type is TypeChar or TypeBlock
	DevMinor           int64
	XAttrs             map[string]string
}
