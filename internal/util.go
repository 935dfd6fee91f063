package internal

// NoPredecessor marks the entry a search was started from.
const NoPredecessor = -1

// Entry is one frontier record. Entries are never mutated after Add.
type Entry[StateType any] struct {
	State     StateType
	Cost      int
	Heuristic float64
	Prev      int
	Seq       uint64
}

// Priority is the estimated total cost used to order the frontier.
func (entry Entry[StateType]) Priority() float64 {
	return float64(entry.Cost) + entry.Heuristic
}

// Arena owns every entry created during one search and hands out integer
// handles so predecessor links are plain indices.
type Arena[StateType any] struct {
	entries []Entry[StateType]
}

// Add stores entry and returns its handle.
func (arena *Arena[StateType]) Add(entry Entry[StateType]) int {
	arena.entries = append(arena.entries, entry)
	return len(arena.entries) - 1
}

// At returns a copy of the entry behind handle.
func (arena *Arena[StateType]) At(handle int) Entry[StateType] {
	return arena.entries[handle]
}

// Len returns the number of entries created so far.
func (arena *Arena[StateType]) Len() int {
	return len(arena.entries)
}

// ReconstructPath walks predecessor handles from last back to the start
// entry and returns the states in start-to-last order. The final element is
// replaced with goal.
func ReconstructPath[StateType any](
	arena *Arena[StateType],
	last int,
	goal StateType,
) []StateType {
	path := []StateType{goal}
	for current := arena.At(last).Prev; current != NoPredecessor; current = arena.At(current).Prev {
		path = append(path, arena.At(current).State)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
