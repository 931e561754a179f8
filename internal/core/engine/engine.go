// Package engine matches outreach campaigns to publishers. It scores
// publishers across five dimensions, explains the scores, assembles a
// budget-constrained publisher mix and summarizes mix coverage.
//
// The engine is city-agnostic: everything city specific comes from the
// domain.CityConfig it is handed. It holds no session state and performs no
// I/O.
package engine

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
)

const defaultParallelThreshold = 32

// Engine scores audiences against publishers. The zero value is not usable;
// construct it with New.
type Engine struct {
	logger            *slog.Logger
	now               func() time.Time
	newID             func() uuid.UUID
	workers           int
	parallelThreshold int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to report dropped publishers.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the timestamp source of match results.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator overrides how match result ids are generated.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// WithWorkers bounds the number of goroutines scoring a batch.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithParallelThreshold sets the batch size above which scoring runs on the
// worker pool. Smaller batches are scored sequentially.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.parallelThreshold = n
		}
	}
}

// New builds an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:            slog.Default(),
		now:               func() time.Time { return time.Now().UTC() },
		newID:             uuid.New,
		workers:           runtime.NumCPU(),
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
