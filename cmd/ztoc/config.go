package main

import (
	"strconv"

	"github.com/alecthomas/kong"
)

// defaultBuildToolIdentifier is stamped into every ZToc unless overridden.
const defaultBuildToolIdentifier = "Go ztoc v1"

// defaultSpanSize is the minimum uncompressed-byte distance between
// checkpoints when the caller doesn't ask for something else.
const defaultSpanSize = 1 << 22

// CLI is the top-level flag set, parsed by kong the way
// dselans-mmmbop/config reads its own CLI struct.
type CLI struct {
	SpanSize            uint64 `kong:"help='Minimum uncompressed bytes between checkpoints.',default='${spanSize}'"`
	BuildToolIdentifier string `kong:"help='Producer identifier stamped into the ZToc.',default='${buildTool}'"`
	Digest              bool   `kong:"help='Tee the input through SHA-256 and print Digest: sha256:<hex> to stderr on success.'"`
	Verify              bool   `kong:"help='Independently re-decompress the buffered input with a second gzip reader as a sanity check. Disables single-pass streaming.'"`
	OtelDebug           bool   `kong:"help='Export OpenTelemetry traces and metrics as JSON to standard error.'"`
	Input               string `kong:"help='Input file; defaults to standard input.',type='existingfile',optional"`
	Output              string `kong:"help='Output file; defaults to standard output.',optional"`

	Version kong.VersionFlag `help:"Show version and exit."`
}

func parseCLI(args []string, version string) (*CLI, error) {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ztoc"),
		kong.Description("Builds a SOCI-compatible ZToc index for a gzip-compressed tar archive."),
		kong.UsageOnError(),
		kong.Vars{
			"spanSize":  strconv.Itoa(defaultSpanSize),
			"buildTool": defaultBuildToolIdentifier,
			"version":   version,
		},
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return cli, nil
}
