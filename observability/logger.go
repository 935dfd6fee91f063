// Package observability provides structured logging, metrics and tracing
// for searches.
//
// Features:
//   - Structured logging via slog
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns logger tagged with the search ID.
func EnrichLogger(logger *slog.Logger, searchID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("search_id", searchID))
}

// LogSearchStart logs the start of a search.
func LogSearchStart(logger *slog.Logger, searchID string) {
	if logger == nil {
		return
	}
	logger.Debug("search starting",
		slog.String("search_id", searchID),
	)
}

// LogSearchComplete logs a search that ran to completion, found or not.
func LogSearchComplete(logger *slog.Logger, searchID string, found bool, expanded, visited, pathLength int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.String("search_id", searchID),
		slog.Bool("found", found),
		slog.Int("expanded", expanded),
		slog.Int("visited", visited),
		slog.Int("path_len", pathLength),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSearchError logs a search aborted by cancellation or a limit.
func LogSearchError(logger *slog.Logger, searchID string, err error, expanded int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("search failed",
		slog.String("search_id", searchID),
		slog.String("error", err.Error()),
		slog.Int("expanded", expanded),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogBatchComplete logs the end of a batch of searches.
func LogBatchComplete(logger *slog.Logger, queries, found, workers int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("batch completed",
		slog.Int("queries", queries),
		slog.Int("found", found),
		slog.Int("workers", workers),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d for log attributes.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
