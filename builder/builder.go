// File: builder.go
// Role: BuildGraph entry point and helpers shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/txgraph/core"
)

// Constructor adds one shape to g using the resolved configuration.
// Constructors must not panic; they return sentinel-wrapped errors.
type Constructor func(g *core.Graph, c *config) error

// BuildGraph creates a graph and applies each constructor in order.
// Vertices of later constructors continue the address counter, so shapes
// are disjoint unless a constructor links to earlier ones.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	c := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, c); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// vertices adds n fresh vertices and returns their handles in order.
func (c *config) vertices(g *core.Graph, method string, n int) ([]core.VertexID, error) {
	ids := make([]core.VertexID, n)
	for i := range ids {
		id, err := g.AddVertex(c.idFn(c.next))
		if err != nil {
			return nil, builderErrorf(method, "vertex %d: %w: %w", c.next, err, ErrConstructFailed)
		}
		c.next++
		ids[i] = id
	}

	return ids, nil
}

// link adds one transaction between u and v with generated gas and value.
func (c *config) link(g *core.Graph, method string, u, v core.VertexID) error {
	if _, err := g.AddEdge(u, v, c.valueFn(c.rng), c.gasFn(c.rng), c.gasPrice); err != nil {
		return builderErrorf(method, "edge %d-%d: %w: %w", u, v, err, ErrConstructFailed)
	}

	return nil
}
