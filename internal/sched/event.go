// internal/sched/event.go

package sched

// EventKind represents the type of scheduler event.
type EventKind int

const (
	EventAdmit EventKind = iota
	EventDispatch
	EventIdleSkip
	EventDone
)

// Event describes one state change of a scheduling run. At is the clock
// value when the event fired; Start and Finish are set on dispatch events
// only.
type Event struct {
	Kind   EventKind
	Task   TaskID
	At     uint64
	Start  uint64
	Finish uint64
}

// TraceFunc observes events during a run. The run is synchronous, so the
// callback executes inline; a slow trace slows the run.
type TraceFunc func(Event)

// emit forwards the event when a trace is installed. Safe on a nil func.
func (f TraceFunc) emit(ev Event) {
	if f != nil {
		f(ev)
	}
}

func (k EventKind) String() string {
	switch k {
	case EventAdmit:
		return "Admit"
	case EventDispatch:
		return "Dispatch"
	case EventIdleSkip:
		return "IdleSkip"
	case EventDone:
		return "Done"
	default:
		return "Unknown"
	}
}
