// File: random.go
// Role: stochastic topologies driven by the configured *rand.Rand.

package builder

import (
	"github.com/katalvlaran/txgraph/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"
)

// RandomSparse builds a G(n,p) graph: every unordered pair (i<j) is joined
// independently with probability p. Pairs are tried in lexicographic order,
// so a fixed seed reproduces the same edge list.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, c *config) error {
		if n < 1 {
			return builderErrorf(methodRandomSparse, "n=%d (want >= 1): %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, "p=%g: %w", p, ErrInvalidProbability)
		}
		if c.rng == nil {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		ids, err := c.vertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if c.rng.Float64() >= p {
					continue
				}
				if err := c.link(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomTree builds a random recursive tree on n vertices (n >= 1): vertex
// i attaches to a uniformly chosen earlier vertex. The result is connected
// with exactly n-1 edges.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, c *config) error {
		if n < 1 {
			return builderErrorf(methodRandomTree, "n=%d (want >= 1): %w", n, ErrTooFewVertices)
		}
		if c.rng == nil {
			return builderErrorf(methodRandomTree, "%w", ErrNeedRandSource)
		}
		ids, err := c.vertices(g, methodRandomTree, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := c.link(g, methodRandomTree, ids[c.rng.Intn(i)], ids[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
