package astar

import (
	"log/slog"
	"runtime"

	"github.com/pdrpinto/astar/v2/observability"
)

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	TieBreak        TieBreak
	// MaxExpansions bounds how many valid states may be expanded. Zero means unbounded.
	MaxExpansions int
	SearchID      string
	Logger        *slog.Logger
	Metrics       observability.MetricsRecorder
	Spans         observability.SpanManager
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines SearchAll runs queries on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithTieBreak selects the order in which equal-priority entries pop.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(options *Options) { options.TieBreak = tieBreak }
}

// WithMaxExpansions aborts a search with an *ExpansionLimitError once it
// would expand more than limit states.
func WithMaxExpansions(limit int) Option {
	return func(options *Options) { options.MaxExpansions = limit }
}

// WithSearchID tags logs and spans. A random UUID is used otherwise.
func WithSearchID(searchID string) Option {
	return func(options *Options) { options.SearchID = searchID }
}

// WithLogger enables structured logging.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics enables metrics recording.
func WithMetrics(metrics observability.MetricsRecorder) Option {
	return func(options *Options) { options.Metrics = metrics }
}

// WithSpanManager enables tracing.
func WithSpanManager(spans observability.SpanManager) Option {
	return func(options *Options) { options.Spans = spans }
}

func newOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		TieBreak:        TieBreakFIFO,
		Metrics:         observability.NoopMetrics{},
		Spans:           observability.NoopSpanManager{},
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Metrics == nil {
		searchOptions.Metrics = observability.NoopMetrics{}
	}
	if searchOptions.Spans == nil {
		searchOptions.Spans = observability.NoopSpanManager{}
	}
	return searchOptions
}
