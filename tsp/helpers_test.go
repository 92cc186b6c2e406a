package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/core"
)

type wedge struct {
	from, to core.NodeID
	w        float64
}

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

// square is an undirected 4-cycle of weight 1 with heavy diagonals.
func square(t testing.TB) *core.Graph {
	return buildGraph(t, 4, false,
		wedge{1, 2, 1}, wedge{2, 3, 1}, wedge{3, 4, 1}, wedge{4, 1, 1},
		wedge{1, 3, 5}, wedge{2, 4, 5},
	)
}

// requireWalk checks that consecutive path entries are adjacent and that
// the summed leg costs of order equal want.
func requireWalk(t *testing.T, g *core.Graph, path []core.NodeID) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		require.True(t, g.HasEdge(path[i], path[i+1]), "path %v: %d→%d not adjacent", path, path[i], path[i+1])
	}
}

func ids(v ...int) []core.NodeID {
	out := make([]core.NodeID, len(v))
	for i, x := range v {
		out[i] = core.NodeID(x)
	}
	return out
}
