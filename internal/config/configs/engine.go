package configs

import (
	"runtime"

	"github.com/rotisserie/eris"
)

// Engine tunes the matching engine and the tenant catalog. The defaults suit
// a single instance serving a handful of cities with inventories of a few
// hundred publishers each.
type Engine struct {
	// Workers bounds the goroutines scoring one batch. Zero resolves to
	// GOMAXPROCS; negative values are rejected by Validate.
	Workers int `env:"WORKERS" envDefault:"0"`

	// ParallelThreshold is the batch size from which scoring fans out to
	// the worker pool. Smaller batches are scored on the calling goroutine,
	// where the pool would cost more than it saves.
	ParallelThreshold int `env:"PARALLEL_THRESHOLD" envDefault:"64"`

	// MinScore is the overall score a publisher needs to be considered by
	// the mix optimizer when a request does not carry its own threshold.
	// It must lie within [0,1].
	MinScore float64 `env:"MIN_SCORE" envDefault:"0"`

	// CityDir is an optional directory of *.yaml tenant files. Files there
	// add cities or replace the built-in ones with the same id.
	CityDir string `env:"CITY_DIR"`
}

// WorkerCount resolves Workers against the runtime.
func (c Engine) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// Validate rejects settings the engine cannot honour.
func (c Engine) Validate() error {
	if c.Workers < 0 {
		return eris.Errorf("ENGINE_WORKERS must be >= 0, got %d", c.Workers)
	}
	if c.ParallelThreshold < 1 {
		return eris.Errorf("ENGINE_PARALLEL_THRESHOLD must be >= 1, got %d", c.ParallelThreshold)
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return eris.Errorf("ENGINE_MIN_SCORE must be within [0,1], got %v", c.MinScore)
	}
	return nil
}
