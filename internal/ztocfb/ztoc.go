// Package ztocfb is the FlatBuffers binding for the Ztoc wire schema,
// hand-written in the shape flatc itself emits (see the Index/Entry tables
// in other_examples' meigma/blob/internal/fb package): one Go file per
// logical schema, Start/Add.../End builder functions per table, and
// GetRootAs.../accessor methods for reading one back.
//
// The schema, reproduced for reference:
//
//	enum CompressionAlgorithm : byte { Gzip = 0 }
//	table Xattr { key: string; value: string; }
//	table FileMetadata {
//	  name: string; type: string; uncompressed_offset: long;
//	  uncompressed_size: long; linkname: string; mode: long;
//	  uid: uint; gid: uint; uname: string; gname: string;
//	  mod_time: string; devmajor: long; devminor: long;
//	  xattrs: [Xattr];
//	}
//	table TOC { metadata: [FileMetadata]; }
//	table CompressionInfo {
//	  compression_algorithm: CompressionAlgorithm;
//	  max_span_id: int;
//	  span_digests: [string];
//	  checkpoints: [ubyte];
//	}
//	table Ztoc {
//	  version: string; build_tool_identifier: string;
//	  compressed_archive_size: long; uncompressed_archive_size: long;
//	  toc: TOC; compression_info: CompressionInfo;
//	}
//	root_type Ztoc;
package ztocfb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// CompressionAlgorithm mirrors the schema's byte enum.
type CompressionAlgorithm int8

// CompressionAlgorithmGzip is the only defined member.
const CompressionAlgorithmGzip CompressionAlgorithm = 0

// Xattr

type Xattr struct {
	_tab flatbuffers.Table
}

func GetRootAsXattr(buf []byte, offset flatbuffers.UOffsetT) *Xattr {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Xattr{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Xattr) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Xattr) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Xattr) Key() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *Xattr) Value() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func XattrStart(builder *flatbuffers.Builder) { builder.StartObject(2) }
func XattrAddKey(builder *flatbuffers.Builder, key flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(key), 0)
}
func XattrAddValue(builder *flatbuffers.Builder, value flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(value), 0)
}
func XattrEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// FileMetadata

type FileMetadata struct {
	_tab flatbuffers.Table
}

func GetRootAsFileMetadata(buf []byte, offset flatbuffers.UOffsetT) *FileMetadata {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &FileMetadata{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *FileMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FileMetadata) Table() flatbuffers.Table { return rcv._tab }

func (rcv *FileMetadata) Name() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *FileMetadata) Type() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *FileMetadata) UncompressedOffset() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *FileMetadata) UncompressedSize() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

// Linkname is always present on the wire (an empty string when the entry
// has no link target), so unlike Uname/Gname this has no IsSet companion.
func (rcv *FileMetadata) Linkname() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *FileMetadata) Mode() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *FileMetadata) Uid() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *FileMetadata) Gid() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

// UnameIsPresent reports whether the uname field has a table offset at
// all, distinguishing "absent" from "present but empty".
func (rcv *FileMetadata) UnameIsPresent() bool {
	return flatbuffers.UOffsetT(rcv._tab.Offset(20)) != 0
}

func (rcv *FileMetadata) Uname() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *FileMetadata) GnameIsPresent() bool {
	return flatbuffers.UOffsetT(rcv._tab.Offset(22)) != 0
}

func (rcv *FileMetadata) Gname() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *FileMetadata) ModTime() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *FileMetadata) Devmajor() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *FileMetadata) Devminor() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(28))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *FileMetadata) XattrsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(30))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *FileMetadata) Xattrs(obj *Xattr, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(30))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func FileMetadataStart(builder *flatbuffers.Builder) { builder.StartObject(14) }
func FileMetadataAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(name), 0)
}
func FileMetadataAddType(builder *flatbuffers.Builder, type_ flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(type_), 0)
}
func FileMetadataAddUncompressedOffset(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(2, n, 0)
}
func FileMetadataAddUncompressedSize(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(3, n, 0)
}
func FileMetadataAddLinkname(builder *flatbuffers.Builder, linkname flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, flatbuffers.UOffsetT(linkname), 0)
}
func FileMetadataAddMode(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(5, n, 0)
}
func FileMetadataAddUid(builder *flatbuffers.Builder, n uint32) {
	builder.PrependUint32Slot(6, n, 0)
}
func FileMetadataAddGid(builder *flatbuffers.Builder, n uint32) {
	builder.PrependUint32Slot(7, n, 0)
}
func FileMetadataAddUname(builder *flatbuffers.Builder, uname flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(8, flatbuffers.UOffsetT(uname), 0)
}
func FileMetadataAddGname(builder *flatbuffers.Builder, gname flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(9, flatbuffers.UOffsetT(gname), 0)
}
func FileMetadataAddModTime(builder *flatbuffers.Builder, modTime flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(10, flatbuffers.UOffsetT(modTime), 0)
}
func FileMetadataAddDevmajor(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(11, n, 0)
}
func FileMetadataAddDevminor(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(12, n, 0)
}
func FileMetadataAddXattrs(builder *flatbuffers.Builder, xattrs flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(13, flatbuffers.UOffsetT(xattrs), 0)
}
func FileMetadataStartXattrsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func FileMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// TOC

type TOC struct {
	_tab flatbuffers.Table
}

func GetRootAsTOC(buf []byte, offset flatbuffers.UOffsetT) *TOC {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &TOC{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *TOC) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *TOC) Table() flatbuffers.Table { return rcv._tab }

func (rcv *TOC) MetadataLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *TOC) Metadata(obj *FileMetadata, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func TOCStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func TOCAddMetadata(builder *flatbuffers.Builder, metadata flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(metadata), 0)
}
func TOCStartMetadataVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func TOCEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// CompressionInfo

type CompressionInfo struct {
	_tab flatbuffers.Table
}

func GetRootAsCompressionInfo(buf []byte, offset flatbuffers.UOffsetT) *CompressionInfo {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &CompressionInfo{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *CompressionInfo) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CompressionInfo) Table() flatbuffers.Table { return rcv._tab }

func (rcv *CompressionInfo) CompressionAlgorithm() CompressionAlgorithm {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return CompressionAlgorithm(rcv._tab.GetInt8(o + rcv._tab.Pos))
	}
	return CompressionAlgorithmGzip
}

func (rcv *CompressionInfo) MaxSpanId() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CompressionInfo) SpanDigestsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *CompressionInfo) SpanDigests(j int) string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		return string(rcv._tab.ByteVector(x))
	}
	return ""
}

func (rcv *CompressionInfo) Checkpoints(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j))
	}
	return 0
}

func (rcv *CompressionInfo) CheckpointsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *CompressionInfo) CheckpointsBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func CompressionInfoStart(builder *flatbuffers.Builder) { builder.StartObject(4) }
func CompressionInfoAddCompressionAlgorithm(builder *flatbuffers.Builder, v CompressionAlgorithm) {
	builder.PrependInt8Slot(0, int8(v), 0)
}
func CompressionInfoAddMaxSpanId(builder *flatbuffers.Builder, n int32) {
	builder.PrependInt32Slot(1, n, 0)
}
func CompressionInfoAddSpanDigests(builder *flatbuffers.Builder, spanDigests flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, flatbuffers.UOffsetT(spanDigests), 0)
}
func CompressionInfoStartSpanDigestsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func CompressionInfoAddCheckpoints(builder *flatbuffers.Builder, checkpoints flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, flatbuffers.UOffsetT(checkpoints), 0)
}
func CompressionInfoStartCheckpointsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(1, numElems, 1)
}
func CompressionInfoEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Ztoc

type Ztoc struct {
	_tab flatbuffers.Table
}

func GetRootAsZtoc(buf []byte, offset flatbuffers.UOffsetT) *Ztoc {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Ztoc{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Ztoc) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Ztoc) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Ztoc) Version() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *Ztoc) BuildToolIdentifier() string {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return string(rcv._tab.ByteVector(o + rcv._tab.Pos))
	}
	return ""
}

func (rcv *Ztoc) CompressedArchiveSize() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Ztoc) UncompressedArchiveSize() int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Ztoc) Toc(obj *TOC) *TOC {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(TOC)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func (rcv *Ztoc) CompressionInfo(obj *CompressionInfo) *CompressionInfo {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(CompressionInfo)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func ZtocStart(builder *flatbuffers.Builder) { builder.StartObject(6) }
func ZtocAddVersion(builder *flatbuffers.Builder, version flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(version), 0)
}
func ZtocAddBuildToolIdentifier(builder *flatbuffers.Builder, id flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(id), 0)
}
func ZtocAddCompressedArchiveSize(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(2, n, 0)
}
func ZtocAddUncompressedArchiveSize(builder *flatbuffers.Builder, n int64) {
	builder.PrependInt64Slot(3, n, 0)
}
func ZtocAddToc(builder *flatbuffers.Builder, toc flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(4, flatbuffers.UOffsetT(toc), 0)
}
func ZtocAddCompressionInfo(builder *flatbuffers.Builder, info flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(5, flatbuffers.UOffsetT(info), 0)
}
func ZtocEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }
