package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records equation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSolve records one solve with its duration and error status.
	RecordSolve(ctx context.Context, kind string, duration time.Duration, err error)

	// RecordParse records one parse of expression text.
	RecordParse(ctx context.Context, err error)

	// RecordUnits adjusts the number of live equations by delta.
	RecordUnits(ctx context.Context, delta int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	solves      metric.Int64Counter
	solveErrors metric.Int64Counter
	solveLat    metric.Float64Histogram
	parses      metric.Int64Counter
	parseErrors metric.Int64Counter
	units       metric.Int64UpDownCounter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("equation")

	solves, err := meter.Int64Counter("equation.solve.count",
		metric.WithDescription("Number of equation solves"),
	)
	if err != nil {
		return nil, err
	}

	solveErrors, err := meter.Int64Counter("equation.solve.errors",
		metric.WithDescription("Number of failed equation solves"),
	)
	if err != nil {
		return nil, err
	}

	solveLat, err := meter.Float64Histogram("equation.solve.latency_ms",
		metric.WithDescription("Equation solve latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	parses, err := meter.Int64Counter("equation.parse.count",
		metric.WithDescription("Number of expression parses"),
	)
	if err != nil {
		return nil, err
	}

	parseErrors, err := meter.Int64Counter("equation.parse.errors",
		metric.WithDescription("Number of rejected expressions"),
	)
	if err != nil {
		return nil, err
	}

	units, err := meter.Int64UpDownCounter("equation.units",
		metric.WithDescription("Number of equations held by the directory"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		solves:      solves,
		solveErrors: solveErrors,
		solveLat:    solveLat,
		parses:      parses,
		parseErrors: parseErrors,
		units:       units,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSolve records a solve.
func (m *otelMetrics) RecordSolve(ctx context.Context, kind string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
	}

	m.solves.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.solveLat.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))

	if err != nil {
		m.solveErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordParse records a parse.
func (m *otelMetrics) RecordParse(ctx context.Context, err error) {
	m.parses.Add(ctx, 1)
	if err != nil {
		m.parseErrors.Add(ctx, 1)
	}
}

// RecordUnits adjusts the live equation count.
func (m *otelMetrics) RecordUnits(ctx context.Context, delta int64) {
	m.units.Add(ctx, delta)
}
