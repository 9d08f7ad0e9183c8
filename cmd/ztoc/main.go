// Command ztoc reads a gzip-compressed tar archive and writes a
// SOCI-compatible ZToc index for it.
package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/quay/zlog"

	"github.com/quay/ztoc/encode"
	"github.com/quay/ztoc/ztoc"
)

// version is stamped at release time; left as a placeholder for a
// development build.
var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cli, err := parseCLI(args, version)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if cli.OtelDebug {
		shutdown, err := setupTelemetry(stderr)
		if err != nil {
			zlog.Error(ctx).Err(err).Msg("setting up telemetry")
			return 1
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				zlog.Error(ctx).Err(err).Msg("shutting down telemetry")
			}
		}()
	}

	in, closeIn, err := openInput(cli.Input, stdin)
	if err != nil {
		zlog.Error(ctx).Err(err).Msg("opening input")
		return 1
	}
	defer closeIn()

	out, closeOut, err := openOutput(cli.Output, stdout)
	if err != nil {
		zlog.Error(ctx).Err(err).Msg("opening output")
		return 1
	}
	defer closeOut()

	var hasher interface {
		io.Writer
		Sum([]byte) []byte
	}
	if cli.Digest {
		hasher = sha256.New()
		in = io.TeeReader(in, hasher)
	}

	if cli.Verify {
		buffered, err := io.ReadAll(in)
		if err != nil {
			zlog.Error(ctx).Err(err).Msg("buffering input for verification")
			return 1
		}
		if err := verifyGzip(buffered); err != nil {
			zlog.Error(ctx).Err(err).Msg("input failed independent gzip verification")
			return 1
		}
		in = bytes.NewReader(buffered)
	}

	z, err := ztoc.Assemble(ctx, in, ztoc.Config{
		SpanSize:            cli.SpanSize,
		BuildToolIdentifier: cli.BuildToolIdentifier,
	})
	if err != nil {
		zlog.Error(ctx).Err(err).Msg("assembling ztoc")
		return 1
	}

	buf, err := encode.Encode(z)
	if err != nil {
		zlog.Error(ctx).Err(err).Msg("encoding ztoc")
		return 1
	}

	if _, err := out.Write(buf); err != nil {
		zlog.Error(ctx).Err(err).Msg("writing ztoc")
		return 1
	}

	if cli.Digest {
		fmt.Fprintf(stderr, "Digest: sha256:%s\n", hex.EncodeToString(hasher.Sum(nil)))
	}

	return 0
}

// verifyGzip independently re-decompresses buf with klauspost/compress/gzip
// as a sanity check that the primary inflate engine agrees with a
// conventional decompressor on stream validity. It's opt-in since it
// requires buffering the whole input, defeating single-pass streaming.
func verifyGzip(buf []byte) error {
	r, err := gzip.NewReader(bytes.NewReader(buf))
	if err != nil {
		return err
	}
	defer r.Close()
	_, err = io.Copy(io.Discard, r)
	return err
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
