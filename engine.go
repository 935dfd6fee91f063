package astar

import (
	"container/heap"

	"github.com/pdrpinto/astar/v2/internal"
)

// Outcome describes what one frontier pop did.
type Outcome int

const (
	// OutcomeExpanded means the popped state was valid and its neighbors were pushed.
	OutcomeExpanded Outcome = iota
	// OutcomeSkippedVisited means the popped state had already been visited.
	OutcomeSkippedVisited
	// OutcomeInvalid means the popped state was marked visited and found invalid.
	OutcomeInvalid
	// OutcomeGoalReached means the popped state equals the goal.
	OutcomeGoalReached
	// OutcomeExhausted means the frontier was empty.
	OutcomeExhausted
	// OutcomeLimitReached means expanding the popped state would exceed MaxExpansions.
	OutcomeLimitReached
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeExpanded:
		return "expanded"
	case OutcomeSkippedVisited:
		return "skipped-visited"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeGoalReached:
		return "goal-reached"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeLimitReached:
		return "limit-reached"
	default:
		return "unknown"
	}
}

// engine owns the frontier, arena and visited set of one search.
type engine[StateType Searchable[StateType]] struct {
	goal          StateType
	arena         internal.Arena[StateType]
	openSet       PriorityQueue[StateType]
	visited       map[StateType]struct{}
	maxExpansions int

	expanded int
	pushed   uint64
	solution int
	done     bool
	found    bool
}

func newEngine[StateType Searchable[StateType]](
	startNode StateType,
	goalNode StateType,
	tieBreak TieBreak,
	maxExpansions int,
) *engine[StateType] {
	e := &engine[StateType]{
		goal:          goalNode,
		visited:       make(map[StateType]struct{}),
		maxExpansions: maxExpansions,
		solution:      internal.NoPredecessor,
	}
	e.openSet = PriorityQueue[StateType]{arena: &e.arena, tieBreak: tieBreak}
	heap.Init(&e.openSet)
	e.push(startNode, 0, internal.NoPredecessor)
	return e
}

// push records a new entry. The heuristic is evaluated once, against the
// goal the search was started with.
func (e *engine[StateType]) push(state StateType, cost int, prev int) {
	handle := e.arena.Add(internal.Entry[StateType]{
		State:     state,
		Cost:      cost,
		Heuristic: state.EstimateTo(e.goal),
		Prev:      prev,
		Seq:       e.pushed,
	})
	e.pushed++
	heap.Push(&e.openSet, handle)
}

// step pops one entry. It must not be called once done is set.
func (e *engine[StateType]) step() (StateType, Outcome) {
	var zero StateType
	if e.openSet.Len() == 0 {
		e.done = true
		return zero, OutcomeExhausted
	}

	handle := heap.Pop(&e.openSet).(int)
	currentItem := e.arena.At(handle)
	current := currentItem.State

	// Goal check
	if current == e.goal {
		e.done = true
		e.found = true
		e.solution = handle
		return current, OutcomeGoalReached
	}

	// Skip if already visited
	if _, seen := e.visited[current]; seen {
		return current, OutcomeSkippedVisited
	}

	// Marked before the validity check so an invalid state is evaluated once.
	e.visited[current] = struct{}{}
	if !current.Valid() {
		return current, OutcomeInvalid
	}

	if e.maxExpansions > 0 && e.expanded >= e.maxExpansions {
		e.done = true
		return current, OutcomeLimitReached
	}
	e.expanded++

	for _, neighbor := range current.Neighbors() {
		e.push(neighbor, currentItem.Cost+1, handle)
	}
	return current, OutcomeExpanded
}

func (e *engine[StateType]) path() []StateType {
	if !e.found {
		return nil
	}
	return internal.ReconstructPath(&e.arena, e.solution, e.goal)
}

func (e *engine[StateType]) result() Result[StateType] {
	res := Result[StateType]{
		Path:     e.path(),
		Found:    e.found,
		Expanded: e.expanded,
		Visited:  len(e.visited),
		Pushed:   e.arena.Len(),
	}
	if res.Found {
		res.Cost = len(res.Path) - 1
	}
	return res
}
