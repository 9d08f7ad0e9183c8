package ztoc

import (
	"archive/tar"
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/quay/zlog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/quay/ztoc/internal/zinflate"
	"github.com/quay/ztoc/tarmeta"
	"github.com/quay/ztoc/zinfo"
)

// Config selects the tunable knobs of an Assemble run.
type Config struct {
	// SpanSize is the minimum uncompressed-byte distance between
	// consecutive checkpoints.
	SpanSize uint64
	// BuildToolIdentifier is stamped into the resulting ZToc verbatim.
	BuildToolIdentifier string
}

// Assemble drives the single streaming pass described by the pipeline:
// compressed bytes from r through a zinfo.Builder, whose decompressed
// output is in turn read by a tarmeta.Extractor. Every entry the extractor
// yields is collected, and once it signals end of archive the Builder is
// drained to EOF so totals and checkpoints are final before the
// CompressionInfo is derived.
func Assemble(ctx context.Context, r io.Reader, cfg Config) (_ *ZToc, err error) {
	// runID identifies this Assemble call in debug logs only; it never
	// enters the wire-format BuildToolIdentifier, which spec pins to a
	// fixed string per producer.
	runID := uuid.New().String()
	ctx = zlog.ContextWithValues(ctx, "component", "ztoc.Assemble", "run_id", runID)
	ctx, span := tracer.Start(ctx, "Assemble")
	var entryCount, checkpointCount int
	defer func() {
		attrs := []attribute.KeyValue{
			attribute.Int("entries", entryCount),
			attribute.Int("checkpoints", checkpointCount),
			attribute.Bool("success", err == nil),
		}
		span.SetAttributes(attrs...)
		if err != nil {
			span.SetStatus(codes.Error, "assemble failed")
			span.RecordError(err)
		} else {
			span.SetStatus(codes.Ok, "assembled")
		}
		builtCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
		span.End()
	}()

	builder, err := zinfo.NewBuilder(r, cfg.SpanSize)
	if err != nil {
		return nil, &Error{Op: "ztoc.Assemble", Kind: KindInflate, Message: "constructing zinfo builder", Inner: err}
	}
	defer builder.Close()

	toc, err := extractAll(ctx, builder)
	if err != nil {
		return nil, classifyPipelineError(err)
	}
	entryCount = len(toc)

	if err := drain(builder); err != nil {
		return nil, classifyPipelineError(err)
	}

	info := builder.ZInfo()
	checkpointCount = len(info.Checkpoints)
	if checkpointCount == 0 {
		return nil, &Error{Op: "ztoc.Assemble", Kind: KindEmptyIndex, Message: "archive produced no checkpoints"}
	}

	spanDigests := make([]string, checkpointCount)
	for i, cp := range info.Checkpoints {
		spanDigests[i] = digestSHA256(cp.Window[:])
	}

	zlog.Debug(ctx).
		Str("build_tool_identifier", cfg.BuildToolIdentifier+"+"+runID).
		Int("entries", entryCount).
		Int("checkpoints", checkpointCount).
		Uint64("total_in", info.TotalIn).
		Uint64("total_out", info.TotalOut).
		Msg("assembled ztoc")

	return &ZToc{
		Version:                 SchemaVersion,
		BuildToolIdentifier:     cfg.BuildToolIdentifier,
		CompressedArchiveSize:   info.TotalIn,
		UncompressedArchiveSize: info.TotalOut,
		TOC:                     toc,
		CompressionInfo: CompressionInfo{
			Algorithm:   Gzip,
			MaxSpanID:   int32(checkpointCount - 1),
			SpanDigests: spanDigests,
			Checkpoints: EncodeCheckpoints(info),
		},
	}, nil
}

// extractAll runs the tar extractor to completion over the builder's
// decompressed output.
func extractAll(ctx context.Context, builder *zinfo.Builder) ([]tarmeta.FileMetadata, error) {
	x := tarmeta.NewExtractor(builder)
	var out []tarmeta.FileMetadata
	for {
		m, err := x.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, *m)
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
	}
}

// drain reads the builder to its own EOF, discarding bytes. The tar
// extractor usually stops before the gzip trailer (it doesn't need to read
// past the last entry's padding), so totals aren't final until this runs.
func drain(builder *zinfo.Builder) error {
	var buf [1 << 14]byte
	for {
		_, err := builder.Read(buf[:])
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if builder.Done() {
			return nil
		}
	}
}

// classifyPipelineError maps an error surfacing from the zinfo/tarmeta
// layers onto this package's Error domain, the one point in the pipeline
// allowed to do so.
func classifyPipelineError(err error) error {
	switch {
	case errors.Is(err, zinfo.ErrUnexpectedEOF):
		return &Error{Op: "ztoc.Assemble", Kind: KindUnexpectedEOF, Inner: err}
	case errors.Is(err, zinfo.ErrNeedDict):
		return &Error{Op: "ztoc.Assemble", Kind: KindNeedDict, Inner: err}
	case errors.Is(err, tarmeta.ErrInvalidData), errors.Is(err, tar.ErrHeader):
		return &Error{Op: "ztoc.Assemble", Kind: KindInvalidData, Inner: err}
	case errors.As(err, new(*zinflate.Error)):
		return &Error{Op: "ztoc.Assemble", Kind: KindInflate, Inner: err}
	default:
		return &Error{Op: "ztoc.Assemble", Kind: KindIO, Message: "pipeline failed", Inner: err}
	}
}
