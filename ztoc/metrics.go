package ztoc

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Metrics singletons, following pkg/tarfs/metrics.go's pattern: one tracer
// and meter per package, resolved once at init.
var (
	tracer trace.Tracer
	meter  metric.Meter
)

// builtCounter counts Assemble calls, failed ones included; each increment
// carries a success attribute.
var builtCounter metric.Int64Counter

func init() {
	const pkgname = `github.com/quay/ztoc/ztoc`
	tracer = otel.Tracer(pkgname)
	meter = otel.Meter(pkgname)

	var err error
	builtCounter, err = meter.Int64Counter("ztoc.assemble.count",
		metric.WithDescription("total number of Assemble calls, by outcome"),
		metric.WithUnit("{instance}"),
	)
	if err != nil {
		panic(err)
	}
}
