// File: shapes.go
// Role: deterministic topologies.
// Edge order is documented per constructor; vertex order follows the
// address counter.

package builder

import (
	"github.com/katalvlaran/txgraph/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodBarbell  = "Barbell"
)

// Path builds a simple path of n vertices (n >= 2).
// Edges: (0,1), (1,2), ..., (n-2,n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, c *config) error {
		if n < 2 {
			return builderErrorf(methodPath, "n=%d (want >= 2): %w", n, ErrTooFewVertices)
		}
		ids, err := c.vertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := c.link(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds a simple cycle of n vertices (n >= 3).
// Edges: the path order, then the closing edge (n-1,0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, c *config) error {
		if n < 3 {
			return builderErrorf(methodCycle, "n=%d (want >= 3): %w", n, ErrTooFewVertices)
		}
		ids, err := c.vertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := c.link(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds a hub with n-1 leaves (n >= 2). The hub is the first vertex.
// Edges: (0,1), (0,2), ..., (0,n-1).
func Star(n int) Constructor {
	return func(g *core.Graph, c *config) error {
		if n < 2 {
			return builderErrorf(methodStar, "n=%d (want >= 2): %w", n, ErrTooFewVertices)
		}
		ids, err := c.vertices(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := c.link(g, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds the complete graph on n vertices (n >= 1).
// Edges: (i,j) for i < j in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, c *config) error {
		if n < 1 {
			return builderErrorf(methodComplete, "n=%d (want >= 1): %w", n, ErrTooFewVertices)
		}
		ids, err := c.vertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		return c.clique(g, methodComplete, ids)
	}
}

// Grid builds a rows x cols orthogonal lattice in row-major order.
// For each cell the right edge is emitted before the bottom edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, c *config) error {
		if rows < 1 || cols < 1 {
			return builderErrorf(methodGrid, "rows=%d, cols=%d (each must be >= 1): %w", rows, cols, ErrTooFewVertices)
		}
		ids, err := c.vertices(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, col int) core.VertexID { return ids[r*cols+col] }
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				if col+1 < cols {
					if err := c.link(g, methodGrid, at(r, col), at(r, col+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := c.link(g, methodGrid, at(r, col), at(r+1, col)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// Barbell builds two k-cliques joined by a single bridge (k >= 3).
// The bridge runs from the last vertex of the first clique to the first
// vertex of the second and is emitted after both cliques.
func Barbell(k int) Constructor {
	return func(g *core.Graph, c *config) error {
		if k < 3 {
			return builderErrorf(methodBarbell, "k=%d (want >= 3): %w", k, ErrTooFewVertices)
		}
		ids, err := c.vertices(g, methodBarbell, 2*k)
		if err != nil {
			return err
		}
		if err := c.clique(g, methodBarbell, ids[:k]); err != nil {
			return err
		}
		if err := c.clique(g, methodBarbell, ids[k:]); err != nil {
			return err
		}
		return c.link(g, methodBarbell, ids[k-1], ids[k])
	}
}

func (c *config) clique(g *core.Graph, method string, ids []core.VertexID) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := c.link(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
