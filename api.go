package astar

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pdrpinto/astar/v2/observability"
)

// Searchable is the contract a state type must satisfy.
//
// Equality and the visited-set key are Go's ==, so two states describing
// the same location must compare equal. All methods must be free of side
// effects; the engine never mutates a state.
type Searchable[StateType any] interface {
	comparable

	// Valid reports whether the state is a legal location to occupy.
	Valid() bool

	// Neighbors returns the states one step away. They need not be valid;
	// validity is checked when a neighbor is popped from the frontier.
	Neighbors() []StateType

	// EstimateTo returns a non-negative estimate of the steps left to goal.
	// It must never overestimate for the returned path to be the shortest.
	EstimateTo(goal StateType) float64
}

// Result contains the outcome of a search
type Result[StateType any] struct {
	// Path runs from start to goal inclusive. Nil when Found is false.
	Path []StateType
	// Cost is the number of steps on Path.
	Cost  int
	Found bool
	// Expanded counts valid states whose neighbors were generated.
	Expanded int
	// Visited counts states marked visited, including invalid ones.
	Visited int
	// Pushed counts frontier entries created, including the start entry.
	Pushed int
}

// FindPath returns the shortest path from start to goal, or false when none exists.
func FindPath[StateType Searchable[StateType]](startNode, goalNode StateType) ([]StateType, bool) {
	e := newEngine(startNode, goalNode, TieBreakFIFO, 0)
	for !e.done {
		e.step()
	}
	return e.path(), e.found
}

// Search runs the A* search with options and reports statistics.
//
// Not finding a path returns a Result with Found set to false and a nil
// error. Errors are returned only when ctx is cancelled or the expansion
// limit is hit.
func Search[StateType Searchable[StateType]](
	contextObject context.Context,
	startNode StateType,
	goalNode StateType,
	options ...Option,
) (Result[StateType], error) {
	searchOptions := newOptions(options)
	return run(contextObject, startNode, goalNode, searchOptions)
}

func run[StateType Searchable[StateType]](
	contextObject context.Context,
	startNode StateType,
	goalNode StateType,
	searchOptions Options,
) (Result[StateType], error) {
	searchID := searchOptions.SearchID
	if searchID == "" {
		searchID = uuid.New().String()
	}
	logger := searchOptions.Logger
	stepLogger := observability.EnrichLogger(logger, searchID)
	debug := stepLogger != nil && stepLogger.Enabled(contextObject, slog.LevelDebug)

	contextObject, span := searchOptions.Spans.StartSearchSpan(contextObject, searchID)
	elapsed := observability.TimedOperation()
	observability.LogSearchStart(logger, searchID)

	e := newEngine(startNode, goalNode, searchOptions.TieBreak, searchOptions.MaxExpansions)

	var err error
	for !e.done {
		if ctxErr := contextObject.Err(); ctxErr != nil {
			err = &CancelledError{Expanded: e.expanded, Cause: ctxErr}
			break
		}
		current, outcome := e.step()
		if debug {
			stepLogger.Debug("frontier pop",
				slog.Any("state", current),
				slog.String("outcome", outcome.String()),
				slog.Int("frontier", e.openSet.Len()),
			)
		}
		if outcome == OutcomeLimitReached {
			err = &ExpansionLimitError{Limit: searchOptions.MaxExpansions, Visited: len(e.visited)}
		}
	}

	res := e.result()
	duration := elapsed()
	searchOptions.Metrics.RecordSearch(contextObject, res.Found, res.Expanded, len(res.Path), duration, err)
	searchOptions.Spans.EndSearchSpan(span, res.Found, res.Expanded, res.Visited, err)
	if err != nil {
		observability.LogSearchError(logger, searchID, err, res.Expanded, observability.Milliseconds(duration))
		return res, err
	}
	observability.LogSearchComplete(logger, searchID, res.Found, res.Expanded, res.Visited, len(res.Path), observability.Milliseconds(duration))
	return res, nil
}
