// internal/sched/ready.go

package sched

import "github.com/emirpasic/gods/trees/binaryheap"

// readySet holds the arrival-eligible tasks that have not been dispatched
// yet and serves them shortest-duration first.
type readySet interface {
	insert(t *Task)
	// extractMin removes and returns the task ranked first by
	// byDispatchOrder. ok is false on an empty set.
	extractMin() (*Task, bool)
	empty() bool
}

// scanReady is the baseline ready set: a plain slice with a linear scan for
// the minimum on every extraction.
type scanReady struct {
	tasks []*Task
}

func (r *scanReady) insert(t *Task) {
	r.tasks = append(r.tasks, t)
}

func (r *scanReady) extractMin() (*Task, bool) {
	if len(r.tasks) == 0 {
		return nil, false
	}
	minIdx := 0
	for i := 1; i < len(r.tasks); i++ {
		if byDispatchOrder(r.tasks[i], r.tasks[minIdx]) < 0 {
			minIdx = i
		}
	}
	t := r.tasks[minIdx]
	r.tasks = append(r.tasks[:minIdx], r.tasks[minIdx+1:]...)
	return t, true
}

func (r *scanReady) empty() bool {
	return len(r.tasks) == 0
}

// heapReady is the optimized ready set: a binary min-heap ordered by the
// same dispatch comparator, giving O(log k) insert and extract.
type heapReady struct {
	heap *binaryheap.Heap
}

func newHeapReady() *heapReady {
	return &heapReady{heap: binaryheap.NewWith(byDispatchOrder)}
}

func (r *heapReady) insert(t *Task) {
	r.heap.Push(t)
}

func (r *heapReady) extractMin() (*Task, bool) {
	v, ok := r.heap.Pop()
	if !ok {
		return nil, false
	}
	return v.(*Task), true
}

func (r *heapReady) empty() bool {
	return r.heap.Empty()
}
