// internal/sched/ordering.go

package sched

// Ordering policies are plain comparator values in the gods style
// (negative = a first). Both scheduler strategies use the same two
// comparators for every container, so the dispatch order of tied tasks is
// identical regardless of the backing data structure.

// byDispatchOrder ranks ready tasks: shortest duration first, ties broken by
// earlier arrival, then by lower id.
func byDispatchOrder(a, b interface{}) int {
	ta, tb := a.(*Task), b.(*Task)
	switch {
	case ta.Duration < tb.Duration:
		return -1
	case ta.Duration > tb.Duration:
		return 1
	}
	return byArrival(ta, tb)
}

// byArrival ranks tasks by arrival time ascending, then by id.
func byArrival(a, b interface{}) int {
	ta, tb := a.(*Task), b.(*Task)
	switch {
	case ta.QueuedAt < tb.QueuedAt:
		return -1
	case ta.QueuedAt > tb.QueuedAt:
		return 1
	case ta.ID < tb.ID:
		return -1
	case ta.ID > tb.ID:
		return 1
	default:
		return 0
	}
}
