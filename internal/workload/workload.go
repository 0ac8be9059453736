// Package workload loads task sets from YAML files.
package workload

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"

	"sjfq/internal/sched"
)

// file mirrors the workload YAML layout:
//
//	tasks:
//	  - id: 42
//	    queued_at: 5
//	    duration: 3
type file struct {
	Tasks []taskEntry `yaml:"tasks"`
}

type taskEntry struct {
	ID       uint64 `yaml:"id"`
	QueuedAt uint64 `yaml:"queued_at"`
	Duration uint64 `yaml:"duration"`
}

// Load reads the workload file at path into a task collection. A file with
// no tasks yields an empty collection, not an error.
func Load(path string) ([]sched.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML workload document.
func Parse(data []byte) ([]sched.Task, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse workload: %w", err)
	}

	tasks := make([]sched.Task, len(f.Tasks))
	for i, e := range f.Tasks {
		tasks[i] = sched.Task{
			ID:       sched.TaskID(e.ID),
			QueuedAt: e.QueuedAt,
			Duration: e.Duration,
		}
	}
	return tasks, nil
}
