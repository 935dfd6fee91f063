package astar

import (
	"fmt"

	"github.com/pdrpinto/astar/v2/internal"
)

// TieBreak decides which of two entries with equal priority pops first.
type TieBreak int

const (
	// TieBreakFIFO pops the entry that was pushed first.
	TieBreakFIFO TieBreak = iota
	// TieBreakLIFO pops the entry that was pushed last.
	TieBreakLIFO
)

func (tieBreak TieBreak) String() string {
	switch tieBreak {
	case TieBreakFIFO:
		return "fifo"
	case TieBreakLIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// PriorityQueue is a container/heap over arena handles, ordered by
// cost+heuristic and then by push sequence.
type PriorityQueue[StateType any] struct {
	arena    *internal.Arena[StateType]
	handles  []int
	tieBreak TieBreak
}

func (queue PriorityQueue[StateType]) Len() int { return len(queue.handles) }

func (queue PriorityQueue[StateType]) Less(i, j int) bool {
	left, right := queue.arena.At(queue.handles[i]), queue.arena.At(queue.handles[j])
	if left.Priority() != right.Priority() {
		return left.Priority() < right.Priority()
	}
	if queue.tieBreak == TieBreakLIFO {
		return left.Seq > right.Seq
	}
	return left.Seq < right.Seq
}

func (queue PriorityQueue[StateType]) Swap(i, j int) {
	queue.handles[i], queue.handles[j] = queue.handles[j], queue.handles[i]
}

func (queue *PriorityQueue[StateType]) Push(x any) {
	queue.handles = append(queue.handles, x.(int))
}

func (queue *PriorityQueue[StateType]) Pop() any {
	oldHandles := queue.handles
	n := len(oldHandles)
	handle := oldHandles[n-1]
	queue.handles = oldHandles[:n-1]
	return handle
}

// ParseTieBreak parses "fifo" or "lifo". The empty string selects FIFO.
func ParseTieBreak(value string) (TieBreak, error) {
	switch value {
	case "", "fifo":
		return TieBreakFIFO, nil
	case "lifo":
		return TieBreakLIFO, nil
	default:
		return TieBreakFIFO, fmt.Errorf("%w: %q", ErrInvalidTieBreak, value)
	}
}
