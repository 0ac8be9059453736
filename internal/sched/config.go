package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yaml
type Config struct {
	Strategy string `yaml:"strategy"`  // "optimized" (by default) or "baseline"
	TraceCSV string `yaml:"trace_csv"` // empty disables CSV tracing
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Strategy: StrategyOptimized,
		TraceCSV: "",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Strategy != StrategyBaseline && cfg.Strategy != StrategyOptimized {
		cfg.Strategy = StrategyOptimized
	}

	return cfg
}
