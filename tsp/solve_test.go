package tsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/builder"
	"github.com/katalvlaran/cerberon/core"
	"github.com/katalvlaran/cerberon/tsp"
)

func TestSolve_EmptyInput(t *testing.T) {
	sol, err := tsp.Solve(context.Background(), square(t), nil)
	require.NoError(t, err)
	for _, tour := range []tsp.Tour{sol.Optimal, sol.Heuristic} {
		assert.NotNil(t, tour.Order)
		assert.Empty(t, tour.Order)
		assert.Empty(t, tour.Path)
		assert.Zero(t, tour.Distance)
	}
}

func TestSolve_NoValidNodes(t *testing.T) {
	sol, err := tsp.Solve(context.Background(), square(t), ids(7, 8))
	require.NoError(t, err)
	for _, tour := range []tsp.Tour{sol.Optimal, sol.Heuristic} {
		assert.Nil(t, tour.Order)
		assert.Nil(t, tour.Path)
		assert.True(t, math.IsInf(tour.Distance, 1))
		assert.False(t, tour.Found())
	}
}

func TestSolve_SingleNode(t *testing.T) {
	// absent and duplicate ids are dropped first
	sol, err := tsp.Solve(context.Background(), square(t), ids(9, 3, 3))
	require.NoError(t, err)
	for _, tour := range []tsp.Tour{sol.Optimal, sol.Heuristic} {
		assert.Equal(t, ids(3), tour.Order)
		assert.Equal(t, ids(3), tour.Path)
		assert.Zero(t, tour.Distance)
	}
}

func TestSolve_Square(t *testing.T) {
	g := square(t)
	sol, err := tsp.Solve(context.Background(), g, ids(1, 2, 3, 4))
	require.NoError(t, err)

	assert.Equal(t, ids(1, 2, 3, 4, 1), sol.Optimal.Order)
	assert.Equal(t, 4.0, sol.Optimal.Distance)
	assert.True(t, sol.Optimal.Closed)
	assert.True(t, sol.Optimal.Complete)
	requireWalk(t, g, sol.Optimal.Path)

	assert.Equal(t, ids(1, 2, 3, 4, 1), sol.Heuristic.Order)
	assert.Equal(t, 4.0, sol.Heuristic.Distance)
}

func TestSolve_FiltersAbsentAndDuplicates(t *testing.T) {
	sol, err := tsp.Solve(context.Background(), square(t), ids(1, 42, 2, 1, 3, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2, 3, 4, 1), sol.Optimal.Order)
}

func TestSolve_ShortestPathLegs(t *testing.T) {
	// 1 and 3 are joined only through 2
	g := buildGraph(t, 3, false, wedge{1, 2, 1}, wedge{2, 3, 1})
	sol, err := tsp.Solve(context.Background(), g, ids(1, 3))
	require.NoError(t, err)

	assert.Equal(t, ids(1, 3, 1), sol.Optimal.Order)
	assert.Equal(t, ids(1, 2, 3, 2, 1), sol.Optimal.Path)
	assert.Equal(t, 4.0, sol.Optimal.Distance)

	assert.Equal(t, ids(1, 3, 1), sol.Heuristic.Order)
	assert.Equal(t, 4.0, sol.Heuristic.Distance)
	assert.True(t, sol.Heuristic.Closed)
}

func TestSolve_UnreachableNode(t *testing.T) {
	g := buildGraph(t, 3, false, wedge{1, 3, 2})
	sol, err := tsp.Solve(context.Background(), g, ids(1, 2))
	require.NoError(t, err)

	assert.False(t, sol.Optimal.Found())
	assert.True(t, math.IsInf(sol.Optimal.Distance, 1))

	// both greedy walks stall immediately; the first start wins the tie
	assert.Equal(t, ids(1), sol.Heuristic.Order)
	assert.Zero(t, sol.Heuristic.Distance)
	assert.False(t, sol.Heuristic.Closed)
	assert.False(t, sol.Heuristic.Complete)
}

func TestNearestNeighbor_OpenTour(t *testing.T) {
	// 1→2→3 with no way back; start 1 yields an open but complete tour
	g := buildGraph(t, 3, true, wedge{1, 2, 1}, wedge{2, 3, 1})
	tour, err := tsp.NearestNeighbor(context.Background(), g, ids(3, 1, 2))
	require.NoError(t, err)
	// start 3 cannot move and costs 0, which beats every other start
	assert.Equal(t, ids(3), tour.Order)
	assert.False(t, tour.Complete)

	tour, err = tsp.NearestNeighbor(context.Background(), g, ids(1, 2, 3), tsp.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, ids(3), tour.Order)
}

func TestNearestNeighbor_GreedyVersusExact(t *testing.T) {
	g := buildGraph(t, 4, false,
		wedge{1, 2, 1}, wedge{2, 3, 1}, wedge{3, 4, 1}, wedge{4, 1, 10},
		wedge{1, 3, 2}, wedge{2, 4, 2},
	)
	exact, err := tsp.Exact(context.Background(), g, ids(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2, 4, 3, 1), exact.Order)
	assert.Equal(t, 6.0, exact.Distance)

	heur, err := tsp.NearestNeighbor(context.Background(), g, ids(1, 2, 3, 4))
	require.NoError(t, err)
	// from 1 the greedy walk ends with the 10-weight edge; from 2 it does not
	assert.Equal(t, ids(2, 1, 3, 4, 2), heur.Order)
	assert.Equal(t, 6.0, heur.Distance)
}

func TestNearestNeighbor_TieBreakSmallerID(t *testing.T) {
	g := buildGraph(t, 3, false, wedge{1, 3, 2}, wedge{1, 2, 2}, wedge{2, 3, 2})
	tour, err := tsp.NearestNeighbor(context.Background(), g, ids(1, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2, 3, 1), tour.Order)
}

func TestExact_Limit(t *testing.T) {
	var edges []wedge
	for u := 1; u <= 9; u++ {
		for v := u + 1; v <= 9; v++ {
			edges = append(edges, wedge{core.NodeID(u), core.NodeID(v), float64(u + v)})
		}
	}
	g := buildGraph(t, 9, false, edges...)
	nodes := ids(1, 2, 3, 4, 5, 6, 7, 8, 9)

	sol, err := tsp.Solve(context.Background(), g, nodes)
	require.NoError(t, err)
	assert.False(t, sol.Optimal.Found())
	assert.True(t, math.IsInf(sol.Optimal.Distance, 1))
	assert.True(t, sol.Heuristic.Found())
	assert.True(t, sol.Heuristic.Complete)

	tour, err := tsp.Exact(context.Background(), g, nodes[:4], tsp.WithExactLimit(3))
	require.NoError(t, err)
	assert.False(t, tour.Found())

	tour, err = tsp.Exact(context.Background(), g, nodes[:5], tsp.WithExactLimit(5))
	require.NoError(t, err)
	assert.True(t, tour.Found())
	assert.Len(t, tour.Order, 6)
}

func TestSolve_Errors(t *testing.T) {
	_, err := tsp.Solve(context.Background(), nil, ids(1))
	assert.ErrorIs(t, err, tsp.ErrNilGraph)

	_, err = tsp.Solve(context.Background(), square(t), ids(1, 2), tsp.WithExactLimit(-1))
	assert.ErrorIs(t, err, tsp.ErrOptionViolation)
	_, err = tsp.NearestNeighbor(context.Background(), square(t), ids(1, 2), tsp.WithWorkers(-2))
	assert.ErrorIs(t, err, tsp.ErrOptionViolation)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tsp.Solve(ctx, square(t), ids(1, 2, 3, 4))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = tsp.Exact(ctx, square(t), ids(1, 2, 3))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_ExactDominatesHeuristic checks optimality dominance on random
// complete graphs and that every tour is a real walk.
func TestSolve_ExactDominatesHeuristic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 40; round++ {
		n := 3 + rng.Intn(5)
		desc, err := builder.Build(
			[]builder.Option{builder.WithRand(rng), builder.WithWeightFn(builder.UniformWeight(1, 30))},
			builder.Complete(n),
		)
		require.NoError(t, err)
		g, err := core.Build(desc, core.WithDirected(false))
		require.NoError(t, err)
		nodes := g.Nodes()
		rng.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })

		sol, err := tsp.Solve(context.Background(), g, nodes)
		require.NoError(t, err)
		require.True(t, sol.Optimal.Closed && sol.Heuristic.Closed, "round %d", round)
		require.LessOrEqual(t, sol.Optimal.Distance, sol.Heuristic.Distance, "round %d", round)
		require.Equal(t, nodes[0], sol.Optimal.Order[0])
		require.Len(t, sol.Optimal.Order, n+1)
		requireWalk(t, g, sol.Optimal.Path)
		requireWalk(t, g, sol.Heuristic.Path)

		again, err := tsp.Solve(context.Background(), g, nodes, tsp.WithWorkers(1))
		require.NoError(t, err)
		require.Equal(t, sol, again, "round %d: result depends on scheduling", round)
	}
}
