// Errors and functional options for betweenness computation.

package centrality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/txgraph/core"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for betweenness computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrWorkerPanic is returned when a worker goroutine panicked. The whole
	// call is aborted and no partial scores are returned.
	ErrWorkerPanic = errors.New("centrality: worker panicked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// DefaultProgressEvery is the default number of sources between progress logs.
const DefaultProgressEvery = 1000

// Options configures Compute.
type Options struct {
	// Workers is the number of goroutines; values <= 1 run sequentially.
	Workers int

	// Verbose enables progress logging.
	Verbose bool

	// ProgressEvery is the number of sources each worker handles between
	// progress log lines.
	ProgressEvery int

	// Logger receives progress lines. Defaults to logrus.StandardLogger().
	Logger logrus.FieldLogger

	// Metrics, if non-nil, is updated once per run and once per source.
	Metrics *Metrics

	// OnSource is called by a worker before it processes a source. It runs
	// on worker goroutines and must be safe for concurrent use. A returned
	// error aborts the computation.
	OnSource func(worker int, source core.VertexID) error

	// internal error recorded during option parsing
	err error
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// DefaultOptions returns sequential, quiet Options.
func DefaultOptions() Options {
	return Options{
		Workers:       1,
		ProgressEvery: DefaultProgressEvery,
		Logger:        logrus.StandardLogger(),
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithVerbose toggles progress logging.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithProgressEvery sets the progress log interval. n must be positive.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ProgressEvery must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithLogger sets the logger used for progress lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors to the run.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithOnSource registers a per-source hook.
func WithOnSource(fn func(worker int, source core.VertexID) error) Option {
	return func(o *Options) {
		o.OnSource = fn
	}
}
