package engine

import (
	"context"
	"time"

	"github.com/katalvlaran/cerberon/anomaly"
	"github.com/katalvlaran/cerberon/bellmanford"
	"github.com/katalvlaran/cerberon/bfs"
	"github.com/katalvlaran/cerberon/core"
	"github.com/katalvlaran/cerberon/dfs"
	"github.com/katalvlaran/cerberon/dijkstra"
	"github.com/katalvlaran/cerberon/tsp"
)

// Routes holds one breadth-first and one depth-first path; nil means no path.
type Routes struct {
	BFS []core.NodeID `yaml:"bfs_path"`
	DFS []core.NodeID `yaml:"dfs_path"`
}

// SecureRoutes pairs the lowest-latency path with the fewest-hop path.
type SecureRoutes struct {
	Shortest dijkstra.Result `yaml:"shortest_path"`
	Safest   dijkstra.Result `yaml:"safest_path"`
}

// TraceRoutes builds a directed graph from desc and finds a BFS and a DFS
// path from start to end.
func (e *Engine) TraceRoutes(ctx context.Context, desc core.Description, start, end core.NodeID) (routes Routes, err error) {
	defer func(t time.Time) { e.observe(OpTraceRoutes, t, resultOf(err), err) }(time.Now())

	g, err := core.Build(desc)
	if err != nil {
		return Routes{}, err
	}
	if routes.BFS, err = bfs.Path(g, start, end, bfs.WithContext(ctx)); err != nil {
		return Routes{}, err
	}
	if routes.DFS, err = dfs.Path(g, start, end, dfs.WithContext(ctx)); err != nil {
		return Routes{}, err
	}

	return routes, nil
}

// SecurePaths builds a directed graph from desc and returns the weighted
// shortest path and the fewest-hop path from start to end.
func (e *Engine) SecurePaths(ctx context.Context, desc core.Description, start, end core.NodeID) (routes SecureRoutes, err error) {
	defer func(t time.Time) { e.observe(OpSecurePaths, t, resultOf(err), err) }(time.Now())

	g, err := core.Build(desc)
	if err != nil {
		return SecureRoutes{}, err
	}
	if routes.Shortest, err = dijkstra.ShortestPath(g, start, end, dijkstra.WithContext(ctx)); err != nil {
		return SecureRoutes{}, err
	}
	if routes.Safest, err = dijkstra.HopPath(g, start, end, dijkstra.WithContext(ctx)); err != nil {
		return SecureRoutes{}, err
	}

	return routes, nil
}

// DetectDelays runs the anomaly detector over a directed graph built from
// desc. It never fails; a degraded report is counted with result "degraded".
func (e *Engine) DetectDelays(ctx context.Context, desc core.Description, source core.NodeID) anomaly.Report {
	start := time.Now()
	rep := anomaly.Detect(desc, source,
		anomaly.WithLogger(e.log),
		anomaly.WithBellmanFordOptions(bellmanford.WithContext(ctx)))

	result := resultOK
	if rep.Status == anomaly.StatusError {
		result = resultDegraded
	}
	e.observe(OpDetectDelays, start, result, rep.Err())

	return rep
}

// OptimizeTour builds an undirected graph from desc and returns the exact
// and heuristic tours over nodes.
func (e *Engine) OptimizeTour(ctx context.Context, desc core.Description, nodes []core.NodeID) (sol tsp.Solution, err error) {
	defer func(t time.Time) { e.observe(OpOptimizeTour, t, resultOf(err), err) }(time.Now())

	g, err := core.Build(desc, core.WithDirected(false))
	if err != nil {
		return tsp.Solution{}, err
	}

	return tsp.Solve(ctx, g, nodes, e.tourOpts...)
}
