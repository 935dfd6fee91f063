// Package astar provides a generic A* pathfinding implementation over
// lazily expanded state spaces.
//
// States implement Searchable: they are comparable, know whether they are a
// legal location, list their one-step neighbors and estimate their distance
// to a goal. Neighbors do not have to be valid; validity is checked once,
// when a state is first popped from the frontier.
//
// It exposes three entry points:
//
//   - FindPath / Search: run the algorithm to completion.
//   - Stepper: iterate the search one frontier pop at a time to drive UIs or debugging tools.
//   - SearchAll: run many independent queries on a bounded worker pool.
//
// Every step costs 1, so the returned path is the one with the fewest steps
// whenever the heuristic is admissible.
package astar
