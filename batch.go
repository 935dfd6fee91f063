package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/astar/v2/observability"
)

// Query is one start/goal pair for SearchAll.
type Query[StateType any] struct {
	Start StateType
	Goal  StateType
}

// SearchAll runs independent searches on a pool of WithWorkers goroutines.
// Each query gets its own frontier and visited set, so states must be safe
// to read concurrently. Results are returned in query order. The first
// error cancels the remaining queries and is returned as a *QueryError.
func SearchAll[StateType Searchable[StateType]](
	contextObject context.Context,
	queries []Query[StateType],
	options ...Option,
) ([]Result[StateType], error) {
	searchOptions := newOptions(options)
	elapsed := observability.TimedOperation()

	results := make([]Result[StateType], len(queries))
	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)

	for i, query := range queries {
		group.Go(func() error {
			queryOptions := searchOptions
			if queryOptions.SearchID != "" {
				queryOptions.SearchID = fmt.Sprintf("%s-%d", searchOptions.SearchID, i)
			}
			res, err := run(groupContext, query.Start, query.Goal, queryOptions)
			results[i] = res
			if err != nil {
				return &QueryError{Index: i, Err: err}
			}
			return nil
		})
	}
	err := group.Wait()

	duration := elapsed()
	searchOptions.Metrics.RecordBatch(contextObject, len(queries), duration)
	if err != nil {
		return results, err
	}

	found := 0
	for _, res := range results {
		if res.Found {
			found++
		}
	}
	observability.LogBatchComplete(searchOptions.Logger, len(queries), found, searchOptions.NumberOfWorkers, observability.Milliseconds(duration))
	return results, nil
}
