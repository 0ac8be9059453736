// internal/sched/scheduler.go

package sched

// Scheduler computes the dispatch order of one task collection on a single
// non-preemptive server under shortest-processing-time-next. A scheduler
// instance is single-use: ExecutionOrder drains its internal state, so a
// second call returns an empty order.
type Scheduler interface {
	ExecutionOrder() []TaskID
}

// Strategy names accepted by NewScheduler and Config.
const (
	StrategyBaseline  = "baseline"
	StrategyOptimized = "optimized"
)

// NewScheduler builds a scheduler for the named strategy. Unknown names fall
// back to the optimized strategy.
func NewScheduler(strategy string, tasks []Task) Scheduler {
	if strategy == StrategyBaseline {
		return NewBaseline(tasks)
	}
	return NewOptimized(tasks)
}

// ExecutionOrder returns the order in which the tasks complete on the single
// server. Dispatch order equals completion order because service is
// non-preemptive.
func ExecutionOrder(tasks []Task) []TaskID {
	return NewOptimized(tasks).ExecutionOrder()
}

// BaselineScheduler is the straightforward strategy: unordered arrival
// index filtered by linear scan, ready set scanned linearly for the minimum.
// O(n^2) overall, kept as the reference the optimized strategy is checked
// against.
type BaselineScheduler struct {
	owned    []Task // private copy; both containers point into it
	clock    Clock
	arrivals *scanArrivals
	ready    *scanReady
	trace    TraceFunc
}

// NewBaseline copies tasks and prepares a baseline scheduler.
func NewBaseline(tasks []Task) *BaselineScheduler {
	owned := make([]Task, len(tasks))
	copy(owned, tasks)
	return &BaselineScheduler{
		owned:    owned,
		arrivals: newScanArrivals(owned),
		ready:    &scanReady{},
	}
}

// SetTrace installs an event observer. Must be called before ExecutionOrder.
func (s *BaselineScheduler) SetTrace(fn TraceFunc) { s.trace = fn }

func (s *BaselineScheduler) ExecutionOrder() []TaskID {
	order := make([]TaskID, 0, len(s.owned))
	for !s.arrivals.empty() || !s.ready.empty() {
		// Admit everything due before deciding: a task arriving at the exact
		// instant the previous one completed must compete for this dispatch.
		for _, t := range s.arrivals.releaseDue(s.clock.Now()) {
			s.ready.insert(t)
			s.trace.emit(Event{Kind: EventAdmit, Task: t.ID, At: s.clock.Now()})
		}

		if t, ok := s.ready.extractMin(); ok {
			start := s.clock.Now()
			s.clock.Advance(t.Duration)
			order = append(order, t.ID)
			s.trace.emit(Event{Kind: EventDispatch, Task: t.ID, At: start, Start: start, Finish: s.clock.Now()})
			continue
		}

		// Idle gap: nothing is ready, so jump to the next arrival and run it.
		t, ok := s.arrivals.popEarliest()
		if !ok {
			panic("sched: arrival index and ready set both empty mid-run")
		}
		s.trace.emit(Event{Kind: EventIdleSkip, Task: t.ID, At: s.clock.Now()})
		s.clock.FastForward(t.QueuedAt)
		start := s.clock.Now()
		s.clock.Advance(t.Duration)
		order = append(order, t.ID)
		s.trace.emit(Event{Kind: EventDispatch, Task: t.ID, At: start, Start: start, Finish: s.clock.Now()})
	}
	s.trace.emit(Event{Kind: EventDone, At: s.clock.Now()})
	return order
}

// OptimizedScheduler is the O(n log n) strategy: arrivals pre-sorted once
// with prefix release by boundary search, ready set backed by a binary
// min-heap keyed on duration.
//
// It realizes the same admit/dispatch/idle-skip state machine as
// BaselineScheduler but deliberately shares none of its loop code, so the
// two strategies can cross-check each other.
type OptimizedScheduler struct {
	owned    []Task
	clock    Clock
	arrivals *sortedArrivals
	ready    *heapReady
	trace    TraceFunc
}

// NewOptimized copies tasks and prepares an optimized scheduler.
func NewOptimized(tasks []Task) *OptimizedScheduler {
	owned := make([]Task, len(tasks))
	copy(owned, tasks)
	return &OptimizedScheduler{
		owned:    owned,
		arrivals: newSortedArrivals(owned),
		ready:    newHeapReady(),
	}
}

// SetTrace installs an event observer. Must be called before ExecutionOrder.
func (s *OptimizedScheduler) SetTrace(fn TraceFunc) { s.trace = fn }

func (s *OptimizedScheduler) ExecutionOrder() []TaskID {
	order := make([]TaskID, 0, len(s.owned))
	for !s.arrivals.empty() || !s.ready.empty() {
		for _, t := range s.arrivals.releaseDue(s.clock.Now()) {
			s.ready.insert(t)
			s.trace.emit(Event{Kind: EventAdmit, Task: t.ID, At: s.clock.Now()})
		}

		if t, ok := s.ready.extractMin(); ok {
			start := s.clock.Now()
			s.clock.Advance(t.Duration)
			order = append(order, t.ID)
			s.trace.emit(Event{Kind: EventDispatch, Task: t.ID, At: start, Start: start, Finish: s.clock.Now()})
			continue
		}

		t, ok := s.arrivals.popEarliest()
		if !ok {
			panic("sched: arrival index and ready set both empty mid-run")
		}
		s.trace.emit(Event{Kind: EventIdleSkip, Task: t.ID, At: s.clock.Now()})
		s.clock.FastForward(t.QueuedAt)
		start := s.clock.Now()
		s.clock.Advance(t.Duration)
		order = append(order, t.ID)
		s.trace.emit(Event{Kind: EventDispatch, Task: t.ID, At: start, Start: start, Finish: s.clock.Now()})
	}
	s.trace.emit(Event{Kind: EventDone, At: s.clock.Now()})
	return order
}
