// internal/sched/arrivals.go

package sched

import "sort"

// arrivalIndex holds the tasks that have not yet been admitted to the ready
// set. Together with the ready set it partitions the undispatched tasks; a
// task is never in both.
type arrivalIndex interface {
	// releaseDue removes and returns every held task with QueuedAt <= now.
	// Safe on an empty index (returns nil).
	releaseDue(now uint64) []*Task
	// popEarliest removes and returns the task with the smallest QueuedAt,
	// used only on the idle fast-forward path. ok is false on an empty index.
	popEarliest() (*Task, bool)
	empty() bool
}

// scanArrivals keeps the tasks unordered and filters them per call.
type scanArrivals struct {
	tasks []*Task
}

func newScanArrivals(tasks []Task) *scanArrivals {
	held := make([]*Task, len(tasks))
	for i := range tasks {
		held[i] = &tasks[i]
	}
	return &scanArrivals{tasks: held}
}

func (a *scanArrivals) releaseDue(now uint64) []*Task {
	var due []*Task
	kept := a.tasks[:0]
	for _, t := range a.tasks {
		if t.QueuedAt <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	a.tasks = kept
	return due
}

func (a *scanArrivals) popEarliest() (*Task, bool) {
	if len(a.tasks) == 0 {
		return nil, false
	}
	minIdx := 0
	for i := 1; i < len(a.tasks); i++ {
		if byArrival(a.tasks[i], a.tasks[minIdx]) < 0 {
			minIdx = i
		}
	}
	t := a.tasks[minIdx]
	a.tasks = append(a.tasks[:minIdx], a.tasks[minIdx+1:]...)
	return t, true
}

func (a *scanArrivals) empty() bool {
	return len(a.tasks) == 0
}

// sortedArrivals sorts the tasks by arrival once up front. releaseDue then
// reduces to a boundary search for the due prefix, and popEarliest to a
// front removal.
type sortedArrivals struct {
	tasks []*Task // ascending by (QueuedAt, ID)
}

func newSortedArrivals(tasks []Task) *sortedArrivals {
	held := make([]*Task, len(tasks))
	for i := range tasks {
		held[i] = &tasks[i]
	}
	sort.Slice(held, func(i, j int) bool {
		return byArrival(held[i], held[j]) < 0
	})
	return &sortedArrivals{tasks: held}
}

func (a *sortedArrivals) releaseDue(now uint64) []*Task {
	cut := sort.Search(len(a.tasks), func(i int) bool {
		return a.tasks[i].QueuedAt > now
	})
	if cut == 0 {
		return nil
	}
	due := a.tasks[:cut:cut]
	a.tasks = a.tasks[cut:]
	return due
}

func (a *sortedArrivals) popEarliest() (*Task, bool) {
	if len(a.tasks) == 0 {
		return nil, false
	}
	t := a.tasks[0]
	a.tasks = a.tasks[1:]
	return t, true
}

func (a *sortedArrivals) empty() bool {
	return len(a.tasks) == 0
}
