package sched

// TaskID uniquely identifies a task in a workload. Uniqueness is assumed by
// callers for output interpretation, not enforced here.
type TaskID uint64

// Task is one unit of work for the single server: it becomes eligible at
// QueuedAt and occupies the server for Duration time units once dispatched.
// Tasks are immutable; the scheduler only reorders references to them.
type Task struct {
	ID       TaskID
	QueuedAt uint64 // virtual time at which the task arrives
	Duration uint64 // service time; zero means instantaneous service
}
