// Error definitions and functional options for the shortest-path runner.

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/txgraph/core"
)

// Sentinel errors returned by the shortest-path runner.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target handle is not a
	// vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrStateMismatch indicates a State that was not sized for the graph.
	ErrStateMismatch = errors.New("dijkstra: state does not match graph")

	// ErrDistanceOverflow indicates that a tentative distance would reach or
	// exceed core.Infinity. The run is rejected instead of wrapping around.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflow")

	// ErrUnreachable indicates that the target was not reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a shortest-path run.
// Betweenness runs use the defaults; the caps exist for bounded path queries.
type Options struct {
	// MaxDistance: vertices farther than this are neither finalized nor
	// relaxed. Default core.Infinity (no cap).
	MaxDistance uint64

	// InfEdgeThreshold: edges whose gas is >= this threshold are treated as
	// impassable. core.Infinity, the default, disables walls entirely, so an
	// edge with gas == core.Infinity still fails with ErrDistanceOverflow.
	InfEdgeThreshold uint64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      core.Infinity,
		InfEdgeThreshold: core.Infinity,
	}
}

// WithMaxDistance caps the distances explored.
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with gas >= threshold as impassable.
// A zero threshold is recorded and surfaces as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold uint64) Option {
	return func(o *Options) {
		if threshold == 0 {
			o.err = fmt.Errorf("%w: got 0", ErrBadInfThreshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}
