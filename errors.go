package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors. Not finding a path is never an error.
var (
	// ErrExpansionLimit indicates WithMaxExpansions stopped the search.
	ErrExpansionLimit = errors.New("expansion limit reached")

	// ErrInvalidTieBreak indicates a tie-break value outside the known set.
	ErrInvalidTieBreak = errors.New("invalid tie-break")
)

// ExpansionLimitError reports where a bounded search stopped.
type ExpansionLimitError struct {
	// Limit is the configured bound.
	Limit int
	// Visited is the size of the visited set when the search stopped.
	Visited int
}

// Error implements the error interface.
func (e *ExpansionLimitError) Error() string {
	return fmt.Sprintf("expansion limit (%d) reached after visiting %d states", e.Limit, e.Visited)
}

// Unwrap returns ErrExpansionLimit for errors.Is support.
func (e *ExpansionLimitError) Unwrap() error {
	return ErrExpansionLimit
}

// CancelledError captures search progress when the context was cancelled.
type CancelledError struct {
	// Expanded is the number of states expanded before cancellation.
	Expanded int
	// Cause is context.Canceled or context.DeadlineExceeded.
	Cause error
}

// Error implements the error interface.
func (e *CancelledError) Error() string {
	return fmt.Sprintf("search cancelled after %d expansions: %v", e.Expanded, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancelledError) Unwrap() error {
	return e.Cause
}

// QueryError wraps the failure of one query in a batch.
type QueryError struct {
	// Index is the position of the query in the batch.
	Index int
	Err   error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("query %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *QueryError) Unwrap() error {
	return e.Err
}
