package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/core"
)

// triangleDesc returns nodes 1,2,3 with 1→2 (1), 2→3 (1), 1→3 (5).
func triangleDesc() core.Description {
	return core.Description{
		Nodes: []core.NodeSpec{
			core.NewNodeSpec(1, "gateway", "edge"),
			core.NewNodeSpec(2, "proxy", "dmz"),
			core.NewNodeSpec(3, "db", "core"),
		},
		Edges: []core.EdgeSpec{
			core.NewEdgeSpec(1, 2, 1, "1ms"),
			core.NewEdgeSpec(2, 3, 1, "1ms"),
			core.NewEdgeSpec(1, 3, 5, "5ms"),
		},
	}
}

// mustBuild builds desc or fails the test.
func mustBuild(t testing.TB, desc core.Description, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.Build(desc, opts...)
	require.NoError(t, err)
	return g
}

func ptr[T any](v T) *T { return &v }
