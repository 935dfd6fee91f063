package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	var records []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var record map[string]any
		require.NoError(t, dec.Decode(&record))
		records = append(records, record)
	}
	return records
}

func TestLogSearchLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf)

	LogSearchStart(logger, "s-1")
	LogSearchComplete(logger, "s-1", true, 4, 6, 5, 1.5)
	LogSearchError(logger, "s-2", errors.New("limit"), 3, 0.25)
	LogBatchComplete(logger, 3, 2, 4, 9)

	records := decodeLines(t, &buf)
	require.Len(t, records, 4)

	assert.Equal(t, "search starting", records[0]["msg"])
	assert.Equal(t, "DEBUG", records[0]["level"])

	assert.Equal(t, "search completed", records[1]["msg"])
	assert.Equal(t, true, records[1]["found"])
	assert.Equal(t, float64(5), records[1]["path_len"])
	assert.Equal(t, float64(6), records[1]["visited"])

	assert.Equal(t, "search failed", records[2]["msg"])
	assert.Equal(t, "limit", records[2]["error"])

	assert.Equal(t, "batch completed", records[3]["msg"])
	assert.Equal(t, float64(4), records[3]["workers"])
}

func TestEnrichLogger(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "x"))

	var buf bytes.Buffer
	EnrichLogger(newJSONLogger(&buf), "s-9").Info("hello")
	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "s-9", records[0]["search_id"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSearchStart(nil, "x")
		LogSearchComplete(nil, "x", false, 0, 0, 0, 0)
		LogSearchError(nil, "x", errors.New("boom"), 0, 0)
		LogBatchComplete(nil, 0, 0, 0, 0)
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, done(), 2*time.Millisecond)
	assert.Equal(t, 1.5, Milliseconds(1500*time.Microsecond))
}
