package sched

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var arrivalImpls = []struct {
	name string
	make func(tasks []Task) arrivalIndex
}{
	{"scan", func(tasks []Task) arrivalIndex { return newScanArrivals(tasks) }},
	{"sorted", func(tasks []Task) arrivalIndex { return newSortedArrivals(tasks) }},
}

func releasedIDs(due []*Task) []TaskID {
	ids := make([]TaskID, len(due))
	for i, t := range due {
		ids[i] = t.ID
	}
	// releaseDue promises no particular order
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestArrivalIndex_ReleaseDue(t *testing.T) {
	tasks := []Task{
		{ID: 1, QueuedAt: 0},
		{ID: 2, QueuedAt: 5},
		{ID: 3, QueuedAt: 3},
		{ID: 4, QueuedAt: 9},
	}

	for _, impl := range arrivalImpls {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.make(tasks)

			if diff := cmp.Diff([]TaskID{1, 3}, releasedIDs(idx.releaseDue(4))); diff != "" {
				t.Errorf("releaseDue(4) mismatch (-want +got):\n%s", diff)
			}
			if got := idx.releaseDue(4); len(got) != 0 {
				t.Errorf("second releaseDue(4) returned %v, want nothing", releasedIDs(got))
			}
			if idx.empty() {
				t.Error("index empty with tasks 2 and 4 still held")
			}
			if diff := cmp.Diff([]TaskID{2, 4}, releasedIDs(idx.releaseDue(100))); diff != "" {
				t.Errorf("releaseDue(100) mismatch (-want +got):\n%s", diff)
			}
			if !idx.empty() {
				t.Error("index not empty after releasing everything")
			}
			if got := idx.releaseDue(100); len(got) != 0 {
				t.Errorf("releaseDue on empty index returned %v", releasedIDs(got))
			}
		})
	}
}

func TestArrivalIndex_PopEarliest(t *testing.T) {
	tasks := []Task{
		{ID: 1, QueuedAt: 7},
		{ID: 2, QueuedAt: 2},
		{ID: 3, QueuedAt: 4},
	}

	for _, impl := range arrivalImpls {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.make(tasks)

			var got []TaskID
			for {
				task, ok := idx.popEarliest()
				if !ok {
					break
				}
				got = append(got, task.ID)
			}
			if diff := cmp.Diff([]TaskID{2, 3, 1}, got); diff != "" {
				t.Errorf("pop order mismatch (-want +got):\n%s", diff)
			}
			if _, ok := idx.popEarliest(); ok {
				t.Error("popEarliest on empty index reported ok")
			}
		})
	}
}

func TestArrivalIndex_PopEarliestTieBreaksByID(t *testing.T) {
	tasks := []Task{
		{ID: 8, QueuedAt: 3},
		{ID: 2, QueuedAt: 3},
		{ID: 5, QueuedAt: 3},
	}

	for _, impl := range arrivalImpls {
		t.Run(impl.name, func(t *testing.T) {
			idx := impl.make(tasks)
			task, ok := idx.popEarliest()
			if !ok || task.ID != 2 {
				t.Errorf("got %v ok=%v, want task 2", task, ok)
			}
		})
	}
}
