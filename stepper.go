package astar

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[StateType comparable] struct {
	Current      StateType
	Outcome      Outcome
	FrontierSize int
	Visited      map[StateType]bool
	Done         bool
	Found        bool
	Path         []StateType
	StepIndex    int
}

// Stepper runs the same search as Search, one frontier pop per Step.
// It is not safe for concurrent use.
type Stepper[StateType Searchable[StateType]] struct {
	engine    *engine[StateType]
	stepCount int
	current   StateType
	last      Outcome
}

// NewStepper prepares a search from startNode to goalNode. Only the
// tie-break and expansion limit options apply.
func NewStepper[StateType Searchable[StateType]](
	startNode StateType,
	goalNode StateType,
	options ...Option,
) *Stepper[StateType] {
	opts := newOptions(options)
	return &Stepper[StateType]{
		engine: newEngine(startNode, goalNode, opts.TieBreak, opts.MaxExpansions),
	}
}

// Step pops one frontier entry and returns a snapshot. Once the search is
// done further calls return the final snapshot without advancing.
func (s *Stepper[StateType]) Step() StepSnapshot[StateType] {
	if !s.engine.done {
		s.stepCount++
		s.current, s.last = s.engine.step()
	}

	snapshot := StepSnapshot[StateType]{
		Current:      s.current,
		Outcome:      s.last,
		FrontierSize: s.engine.openSet.Len(),
		Visited:      copyVisited(s.engine.visited),
		Done:         s.engine.done,
		Found:        s.engine.found,
		StepIndex:    s.stepCount,
	}
	if snapshot.Found {
		snapshot.Path = s.engine.path()
	}
	return snapshot
}

// Done reports whether the search has finished.
func (s *Stepper[StateType]) Done() bool {
	return s.engine.done
}

// Result returns the statistics gathered so far.
func (s *Stepper[StateType]) Result() Result[StateType] {
	return s.engine.result()
}

func copyVisited[T comparable](m map[T]struct{}) map[T]bool {
	c := make(map[T]bool, len(m))
	for k := range m {
		c[k] = true
	}
	return c
}
