// Package zinflate is a thin Go wrapper over the system zlib inflater,
// configured for automatic gzip/zlib header detection and block-granular
// inflation.
//
// It exists because neither the standard library's compress/flate nor
// klauspost/compress/flate expose zlib's Z_BLOCK flush mode or the
// data_type bit-accurate block-boundary signal that a resumable gzip index
// needs; those are only available by talking to the C library directly.
// This follows the cgo binding shape of bignacio/gozlib.
package zinflate

/*
#cgo LDFLAGS: -lz
#include <zlib.h>
#include <stdlib.h>

// zinflate_alloc is a custom zalloc for z_stream that prefixes every
// allocation with a size_t header recording the allocation size, so
// zinflate_free can reconstruct it without zlib passing a size back.
static void *zinflate_alloc(void *opaque, unsigned items, unsigned size) {
	size_t align = sizeof(size_t);
	size_t n = (size_t)items * (size_t)size;
	size_t total = ((n + align - 1) / align) * align + sizeof(size_t);
	void *raw = malloc(total);
	if (raw == NULL) {
		return NULL;
	}
	*(size_t *)raw = total;
	return (void *)((char *)raw + sizeof(size_t));
}

static void zinflate_free(void *opaque, void *address) {
	if (address == NULL) {
		return;
	}
	free((void *)((char *)address - sizeof(size_t)));
}

// zinflate_init configures windowBits=47: a 32KiB window with automatic
// zlib/gzip header detection, equivalent to zlib's documented convention
// of adding 32 to a window size to request gzip-or-zlib autodetect.
static int zinflate_init(z_stream *strm) {
	strm->zalloc = zinflate_alloc;
	strm->zfree = zinflate_free;
	strm->opaque = NULL;
	strm->next_in = NULL;
	strm->avail_in = 0;
	return inflateInit2_(strm, 47, ZLIB_VERSION, (int)sizeof(z_stream));
}

static int zinflate_step(z_stream *strm) {
	return inflate(strm, Z_BLOCK);
}

static const char *zinflate_msg(z_stream *strm) {
	return strm->msg;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// Status is the outcome of one Engine.Step call.
type Status int

const (
	// StatusOK indicates the stream can keep being fed.
	StatusOK Status = iota
	// StatusStreamEnd indicates the gzip member is fully decoded; no
	// further input should be bound.
	StatusStreamEnd
)

// ErrNeedDict is returned when zlib reports Z_NEED_DICT. A gzip member
// produced by a standard encoder never needs an external dictionary, so
// this is always treated as a fatal, unexpected condition.
var ErrNeedDict = errors.New("zinflate: unexpected NEED_DICT")

// Error wraps a non-OK, non-STREAM_END, non-NEED_DICT return from zlib's
// inflate, carrying zlib's own message when it supplied one.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("zinflate: inflate failed (code %d)", e.Code)
	}
	return fmt.Sprintf("zinflate: inflate failed (code %d): %s", e.Code, e.Msg)
}

// Engine is a single inflater instance bound to one gzip/zlib stream for
// its entire lifetime. It is not safe for concurrent use; the whole design
// is single-threaded and streaming (see package ztoc).
type Engine struct {
	strm *C.z_stream
}

// New allocates and initializes an inflater with automatic gzip/zlib
// header detection. The caller must call Close when done to release the
// foreign memory held by the stream, on every exit path including errors.
func New() (*Engine, error) {
	strm := (*C.z_stream)(C.calloc(1, C.size_t(unsafe.Sizeof(C.z_stream{}))))
	if strm == nil {
		return nil, errors.New("zinflate: failed to allocate z_stream")
	}
	if ret := C.zinflate_init(strm); ret != C.Z_OK {
		msg := C.GoString(C.zinflate_msg(strm))
		C.free(unsafe.Pointer(strm))
		return nil, &Error{Code: int(ret), Msg: msg}
	}
	return &Engine{strm: strm}, nil
}

// Close releases the inflater's state and its backing allocation. Close is
// idempotent.
func (e *Engine) Close() error {
	if e.strm == nil {
		return nil
	}
	C.inflateEnd(e.strm)
	C.free(unsafe.Pointer(e.strm))
	e.strm = nil
	return nil
}

// BindInput sets the inflater's input cursor to b. b must not be mutated or
// go out of scope until the following Step call returns.
func (e *Engine) BindInput(b []byte) {
	if len(b) == 0 {
		e.strm.next_in = nil
		e.strm.avail_in = 0
		return
	}
	e.strm.next_in = (*C.Bytef)(unsafe.Pointer(&b[0]))
	e.strm.avail_in = C.uInt(len(b))
}

// BindOutput sets the inflater's output cursor to b. b must not be mutated
// or go out of scope until the following Step call returns.
func (e *Engine) BindOutput(b []byte) {
	if len(b) == 0 {
		e.strm.next_out = nil
		e.strm.avail_out = 0
		return
	}
	e.strm.next_out = (*C.Bytef)(unsafe.Pointer(&b[0]))
	e.strm.avail_out = C.uInt(len(b))
}

// AvailIn returns the number of unconsumed input bytes remaining from the
// last BindInput call.
func (e *Engine) AvailIn() int { return int(e.strm.avail_in) }

// AvailOut returns the number of unfilled output bytes remaining from the
// last BindOutput call.
func (e *Engine) AvailOut() int { return int(e.strm.avail_out) }

// BlockBoundary reports whether the inflater is currently stopped at a
// DEFLATE block boundary eligible for a checkpoint, per zlib's data_type
// convention: bit 7 set means "at end of block", bit 6 set means a
// stream-end sentinel is pending (not a real checkpoint opportunity), and
// the low three bits carry the bit-residue for the checkpoint.
func (e *Engine) BlockBoundary() (bits uint8, ok bool) {
	dt := int(e.strm.data_type)
	if dt&128 != 0 && dt&64 == 0 {
		return uint8(dt & 7), true
	}
	return 0, false
}

// Step advances the inflater by one call to inflate(Z_BLOCK), stopping at
// the next DEFLATE block boundary (or sooner, if output space or input
// runs out first).
func (e *Engine) Step() (Status, error) {
	ret := C.zinflate_step(e.strm)
	switch ret {
	case C.Z_OK:
		return StatusOK, nil
	case C.Z_STREAM_END:
		return StatusStreamEnd, nil
	case C.Z_NEED_DICT:
		return StatusOK, ErrNeedDict
	default:
		msg := C.GoString(C.zinflate_msg(e.strm))
		return StatusOK, &Error{Code: int(ret), Msg: msg}
	}
}
