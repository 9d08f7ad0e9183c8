package zinfo

import (
	"errors"
	"fmt"
	"io"

	"github.com/quay/ztoc/internal/zinflate"
	"github.com/quay/ztoc/ring"
)

// inputChunk is the size of the internal compressed-input refill buffer.
// 16KiB is the conventional choice for zlib-style streaming inflaters.
const inputChunk = 1 << 14

// ErrUnexpectedEOF is returned when the upstream reader reaches EOF before
// the gzip stream reports STREAM_END.
var ErrUnexpectedEOF = errors.New("zinfo: unexpected EOF before gzip stream end")

// ErrNeedDict is re-exported from the inflate engine: a gzip member never
// legitimately needs an external dictionary.
var ErrNeedDict = zinflate.ErrNeedDict

// Builder presents itself as an io.Reader delivering decompressed bytes
// while recording a ZInfo as a side effect. Configuration is just SpanSize:
// the minimum uncompressed-byte distance between consecutive checkpoints.
//
// A Builder owns one Engine, one input buffer, and one ring.Window for its
// entire lifetime; Close must be called on every exit path to release the
// Engine's foreign memory.
type Builder struct {
	upstream io.Reader
	engine   *zinflate.Engine
	window   ring.Window

	input      [inputChunk]byte
	inputValid []byte // unconsumed tail of input currently bound to the engine

	spanSize       uint64
	totalIn        uint64
	totalOut       uint64
	lastCheckpoint uint64
	checkpoints    []Checkpoint
	streamEnded    bool
	refusedFurther bool
}

// NewBuilder constructs a Builder reading compressed bytes from r, taking a
// checkpoint roughly every spanSize uncompressed bytes.
func NewBuilder(r io.Reader, spanSize uint64) (*Builder, error) {
	e, err := zinflate.New()
	if err != nil {
		return nil, fmt.Errorf("zinfo: unable to initialize inflater: %w", err)
	}
	return &Builder{
		upstream: r,
		engine:   e,
		spanSize: spanSize,
	}, nil
}

// Close releases the Builder's inflater state. Close is idempotent.
func (b *Builder) Close() error {
	if b.engine == nil {
		return nil
	}
	err := b.engine.Close()
	b.engine = nil
	return err
}

// Read implements io.Reader, decompressing into p and recording checkpoints
// as a side effect. Once the gzip stream reports its end, Read returns
// (0, io.EOF) on every subsequent call.
func (b *Builder) Read(p []byte) (int, error) {
	if b.refusedFurther {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	b.engine.BindOutput(p)
	readCount := 0

	for b.engine.AvailOut() > 0 {
		if len(b.inputValid) == 0 {
			n, err := b.upstream.Read(b.input[:])
			if n == 0 {
				if err == nil {
					return readCount, fmt.Errorf("zinfo: %w", ErrUnexpectedEOF)
				}
				if errors.Is(err, io.EOF) {
					return readCount, fmt.Errorf("zinfo: %w", ErrUnexpectedEOF)
				}
				return readCount, fmt.Errorf("zinfo: reading upstream: %w", err)
			}
			b.inputValid = b.input[:n]
			b.engine.BindInput(b.inputValid)
		}

		preIn, preOut := b.engine.AvailIn(), b.engine.AvailOut()
		status, err := b.engine.Step()
		consumedIn := preIn - b.engine.AvailIn()
		producedOut := preOut - b.engine.AvailOut()

		b.totalIn += uint64(consumedIn)
		b.totalOut += uint64(producedOut)
		readCount += producedOut
		b.inputValid = b.inputValid[consumedIn:]

		if producedOut > 0 {
			produced := p[len(p)-preOut : len(p)-preOut+producedOut]
			b.window.Write(produced)
		}

		if err != nil {
			if errors.Is(err, zinflate.ErrNeedDict) {
				return readCount, fmt.Errorf("zinfo: %w", ErrNeedDict)
			}
			return readCount, fmt.Errorf("zinfo: inflate failed: %w", err)
		}

		if bits, ok := b.engine.BlockBoundary(); ok {
			if b.totalOut == 0 || b.totalOut-b.lastCheckpoint > b.spanSize {
				b.takeCheckpoint(bits)
			}
		}

		if status == zinflate.StatusStreamEnd {
			b.streamEnded = true
			b.refusedFurther = true
			return readCount, nil
		}
	}

	return readCount, nil
}

func (b *Builder) takeCheckpoint(bits uint8) {
	cp := Checkpoint{
		InOffset:  b.totalIn,
		OutOffset: b.totalOut,
		Bits:      bits & 7,
	}
	b.window.Snapshot(cp.Window[:])
	b.checkpoints = append(b.checkpoints, cp)
	b.lastCheckpoint = b.totalOut
}

// ZInfo returns the index accumulated so far. It is only complete once the
// stream has been fully drained (Read has returned the STREAM_END result).
func (b *Builder) ZInfo() ZInfo {
	return ZInfo{
		Version:     Version,
		SpanSize:    b.spanSize,
		TotalIn:     b.totalIn,
		TotalOut:    b.totalOut,
		Checkpoints: b.checkpoints,
	}
}

// Done reports whether the gzip stream has reported its end.
func (b *Builder) Done() bool { return b.streamEnded }
