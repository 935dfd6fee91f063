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

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records one completed or aborted search.
	RecordSearch(ctx context.Context, found bool, expanded, pathLength int, duration time.Duration, err error)

	// RecordBatch records one SearchAll call.
	RecordBatch(ctx context.Context, queries int, duration time.Duration)
}

type otelMetrics struct {
	searchRuns    metric.Int64Counter
	searchErrors  metric.Int64Counter
	expanded      metric.Int64Counter
	searchLatency metric.Float64Histogram
	pathLength    metric.Int64Histogram
	batchQueries  metric.Int64Histogram
	batchLatency  metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("astar")

	searchRuns, err := meter.Int64Counter("astar.search.runs",
		metric.WithDescription("Number of searches"),
	)
	if err != nil {
		return nil, err
	}

	searchErrors, err := meter.Int64Counter("astar.search.errors",
		metric.WithDescription("Number of searches aborted by cancellation or limits"),
	)
	if err != nil {
		return nil, err
	}

	expanded, err := meter.Int64Counter("astar.search.expanded",
		metric.WithDescription("Number of states whose neighbors were generated"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("astar.search.latency_ms",
		metric.WithDescription("Search latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	pathLength, err := meter.Int64Histogram("astar.search.path_length",
		metric.WithDescription("Number of states on found paths"),
	)
	if err != nil {
		return nil, err
	}

	batchQueries, err := meter.Int64Histogram("astar.batch.queries",
		metric.WithDescription("Number of queries per batch"),
	)
	if err != nil {
		return nil, err
	}

	batchLatency, err := meter.Float64Histogram("astar.batch.latency_ms",
		metric.WithDescription("Batch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		searchRuns:    searchRuns,
		searchErrors:  searchErrors,
		expanded:      expanded,
		searchLatency: searchLatency,
		pathLength:    pathLength,
		batchQueries:  batchQueries,
		batchLatency:  batchLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
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

// RecordSearch records a search.
func (m *otelMetrics) RecordSearch(ctx context.Context, found bool, expanded, pathLength int, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.Bool("found", found))

	m.searchRuns.Add(ctx, 1, attrs)
	m.expanded.Add(ctx, int64(expanded), attrs)
	m.searchLatency.Record(ctx, Milliseconds(duration), attrs)
	if found {
		m.pathLength.Record(ctx, int64(pathLength))
	}
	if err != nil {
		m.searchErrors.Add(ctx, 1)
	}
}

// RecordBatch records a batch.
func (m *otelMetrics) RecordBatch(ctx context.Context, queries int, duration time.Duration) {
	m.batchQueries.Record(ctx, int64(queries))
	m.batchLatency.Record(ctx, Milliseconds(duration))
}
