// internal/sched/trace.go

package sched

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVTrace writes scheduler events as CSV rows, one per event.
type CSVTrace struct {
	w *csv.Writer
}

// NewCSVTrace writes a header row and returns a trace sink over w.
func NewCSVTrace(w io.Writer) *CSVTrace {
	cw := csv.NewWriter(w)
	cw.Write([]string{"event", "task_id", "at", "start", "finish"})
	cw.Flush()
	return &CSVTrace{w: cw}
}

// Record is a TraceFunc.
func (t *CSVTrace) Record(ev Event) {
	rec := []string{
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.Task), 10),
		strconv.FormatUint(ev.At, 10),
		strconv.FormatUint(ev.Start, 10),
		strconv.FormatUint(ev.Finish, 10),
	}
	t.w.Write(rec)
	t.w.Flush()
}
