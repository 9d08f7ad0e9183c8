package ztoc

import (
	"errors"
	"strings"
)

// Error is this module's error domain type, adapted from claircore's own
// Error type: Assemble constructs one when classifying a pipeline failure;
// the layers below it just wrap with fmt.Errorf("%w", ...).
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case KindIO, KindUnexpectedEOF, KindInflate, KindNeedDict, KindInvalidData, KindEmptyIndex:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables errors.Is by comparing Kind. Callers should compare against a
// declared ErrorKind, not a specific *Error value.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind classifies an Error for callers that need to branch on failure
// mode.
type ErrorKind string

// Error implements error, so an ErrorKind can itself be used as an
// errors.Is target.
func (k ErrorKind) Error() string { return string(k) }

// Defined error kinds. Every *Error constructed anywhere in this module
// uses one of these.
var (
	KindIO            = ErrorKind("io")             // reading/writing the underlying streams failed
	KindUnexpectedEOF = ErrorKind("unexpected-eof") // upstream ended before the gzip stream did
	KindInflate       = ErrorKind("inflate")        // zlib failed: the DEFLATE stream is malformed, or the inflater could not be set up
	KindNeedDict      = ErrorKind("need-dict")      // a preset dictionary was required, which gzip members never legitimately need
	KindInvalidData   = ErrorKind("invalid-data")   // non-UTF-8 text, an unparsable tar header, or an unrecognized tar entry type
	KindEmptyIndex    = ErrorKind("empty-index")    // the archive produced zero checkpoints
)
