package configs

import "time"

// Analysis configures the periodic pipeline trigger.
type Analysis struct {
	// Interval is the cadence of scheduled analysis runs.
	Interval time.Duration `env:"INTERVAL" envDefault:"6h"`
	// RunOnStart triggers one run immediately after startup.
	RunOnStart bool `env:"RUN_ON_START" envDefault:"false"`
}
