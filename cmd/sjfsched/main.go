package main

import (
	"flag"
	"fmt"
	"os"

	"sjfq/internal/sched"
	"sjfq/internal/workload"
)

func main() {
	configPath := flag.String("config", "config.yml", "scheduler config file")
	workloadPath := flag.String("workload", "workload.yml", "task set file")
	strategy := flag.String("strategy", "", "override config strategy (baseline|optimized)")
	flag.Parse()

	cfg := sched.Load(*configPath)
	if *strategy != "" {
		cfg.Strategy = *strategy
	}

	tasks, err := workload.Load(*workloadPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := sched.NewScheduler(cfg.Strategy, tasks)

	// CSV tracing is opt-in via config, like the rest of the observability.
	if cfg.TraceCSV != "" {
		f, err := os.Create(cfg.TraceCSV)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		trace := sched.NewCSVTrace(f)
		if ts, ok := s.(interface{ SetTrace(sched.TraceFunc) }); ok {
			ts.SetTrace(trace.Record)
		}
	}

	for _, id := range s.ExecutionOrder() {
		fmt.Println(id)
	}
}
