package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var lookupTracer = otel.Tracer("edulookup/service")

var (
	lookupMetricsOnce sync.Once
	lookupCounter     metric.Int64Counter
	lookupLatency     metric.Float64Histogram
)

func initLookupMetrics() {
	lookupMetricsOnce.Do(func() {
		meter := otel.Meter("edulookup/service")

		var err error
		lookupCounter, err = meter.Int64Counter(
			"edulookup.lookups.total",
			metric.WithDescription("Lookups by provider and outcome"),
		)
		if err != nil {
			slog.Warn("failed to create lookup counter", "error", err)
		}

		lookupLatency, err = meter.Float64Histogram(
			"edulookup.lookup.duration",
			metric.WithDescription("Lookup wall time including the provider call"),
			metric.WithUnit("ms"),
		)
		if err != nil {
			slog.Warn("failed to create lookup latency histogram", "error", err)
		}
	})
}

func recordLookupMetrics(ctx context.Context, ev LookupEvent) {
	initLookupMetrics()
	attrs := metric.WithAttributes(
		attribute.String("lookup.provider", ev.Provider),
		attribute.String("lookup.outcome", string(ev.Outcome)),
	)
	if lookupCounter != nil {
		lookupCounter.Add(ctx, 1, attrs)
	}
	if lookupLatency != nil {
		lookupLatency.Record(ctx, float64(ev.Duration)/float64(time.Millisecond), attrs)
	}
}
