package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Uses the global OTel tracer provider.
var tracer = otel.Tracer("astar")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSearchSpan starts a span covering one search.
	StartSearchSpan(ctx context.Context, searchID string) (context.Context, trace.Span)

	// EndSearchSpan records the search outcome on span and ends it.
	EndSearchSpan(span trace.Span, found bool, expanded, visited int, err error)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// Configure the provider before calling this function:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSearchSpan starts a span for one search.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, searchID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "astar.search",
		trace.WithAttributes(
			attribute.String("search.id", searchID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSearchSpan completes a span, optionally recording an error.
func (m *otelSpanManager) EndSearchSpan(span trace.Span, found bool, expanded, visited int, err error) {
	if span == nil {
		return
	}
	span.SetAttributes(
		attribute.Bool("search.found", found),
		attribute.Int("search.expanded", expanded),
		attribute.Int("search.visited", visited),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
