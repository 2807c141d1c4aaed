// Package core_test holds shared fixtures for the core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/txgraph/core"
	"github.com/stretchr/testify/require"
)

// Canonical addresses used across tests.
const (
	Addr1 = "0x1"
	Addr2 = "0x2"
	Addr3 = "0x3"
	Addr4 = "0x4"
)

// mustVertex adds address to g and fails the test on error.
func mustVertex(t testing.TB, g *core.Graph, address string) core.VertexID {
	t.Helper()
	id, err := g.AddVertex(address)
	require.NoError(t, err, "AddVertex(%q)", address)

	return id
}

// mustEdge adds an edge with unit payload and the given gas.
func mustEdge(t testing.TB, g *core.Graph, src, dst core.VertexID, gas uint64) core.EdgeID {
	t.Helper()
	eid, err := g.AddEdge(src, dst, 1, gas, 1)
	require.NoError(t, err, "AddEdge(%d,%d)", src, dst)

	return eid
}

// newSquare builds 0x1-0x2, 0x1-0x3, 0x2-0x4, 0x3-0x4.
func newSquare(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	v1 := mustVertex(t, g, Addr1)
	v2 := mustVertex(t, g, Addr2)
	v3 := mustVertex(t, g, Addr3)
	v4 := mustVertex(t, g, Addr4)
	mustEdge(t, g, v1, v2, 1)
	mustEdge(t, g, v1, v3, 1)
	mustEdge(t, g, v2, v4, 1)
	mustEdge(t, g, v3, v4, 1)

	return g
}
