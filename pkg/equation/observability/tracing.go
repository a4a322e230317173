package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the equation tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("equation")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSolveSpan starts a span for one solve of an equation.
	StartSolveSpan(ctx context.Context, equationID uint64, solveID string) (context.Context, trace.Span)

	// StartMutationSpan starts a span for create, edit, merge or delete.
	StartMutationSpan(ctx context.Context, op string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSolveSpan starts a span for a solve.
func (m *otelSpanManager) StartSolveSpan(ctx context.Context, equationID uint64, solveID string) (context.Context, trace.Span) {
	return StartSolveSpan(ctx, equationID, solveID)
}

// StartMutationSpan starts a span for a directory mutation.
func (m *otelSpanManager) StartMutationSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "equation."+op,
		trace.WithAttributes(
			attribute.String("equation.operation", op),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartSolveSpan starts a span for a solve.
// Uses the global OTel tracer.
func StartSolveSpan(ctx context.Context, equationID uint64, solveID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "equation.solve",
		trace.WithAttributes(
			attribute.Int64("equation.id", int64(equationID)),
			attribute.String("solve.id", solveID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
