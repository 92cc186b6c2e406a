package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/core"
)

type wedge struct {
	from, to core.NodeID
	w        float64
}

// buildGraph creates a graph over nodes 1..n with the given weighted edges.
func buildGraph(t testing.TB, n int, directed bool, edges ...wedge) *core.Graph {
	t.Helper()
	desc := core.Description{}
	for i := 1; i <= n; i++ {
		desc.Nodes = append(desc.Nodes, core.NewNodeSpec(core.NodeID(i), "host", "lan"))
	}
	for _, e := range edges {
		desc.Edges = append(desc.Edges, core.NewEdgeSpec(e.from, e.to, e.w, ""))
	}
	g, err := core.Build(desc, core.WithDirected(directed))
	require.NoError(t, err)
	return g
}

// triangle is 1→2 (1), 2→3 (1), 1→3 (5).
func triangle(t testing.TB) *core.Graph {
	return buildGraph(t, 3, true, wedge{1, 2, 1}, wedge{2, 3, 1}, wedge{1, 3, 5})
}

// pathWeight sums the arc weights along path.
func pathWeight(t testing.TB, g *core.Graph, path []core.NodeID) float64 {
	t.Helper()
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, err := g.Weight(path[i], path[i+1])
		require.NoError(t, err)
		total += w
	}
	return total
}
