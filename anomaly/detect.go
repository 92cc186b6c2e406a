// File: detect.go
// Role: Latency outlier detection layered on Bellman-Ford, with a
//       never-failing report contract.
// Determinism:
//   - Suspicious edges follow core.Graph.Edges() order; negative-cycle
//     edges follow bellmanford's arc scan order.
// Concurrency:
//   - Stateless; safe for concurrent use with distinct or shared graphs.

package anomaly

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cerberon/bellmanford"
	"github.com/katalvlaran/cerberon/core"
)

// Detect builds a graph from desc and analyses it from source.
// Build failures yield a degraded report instead of an error.
func Detect(desc core.Description, source core.NodeID, opts ...Option) Report {
	cfg := resolve(opts)
	g, err := core.Build(desc, cfg.Build...)
	if err != nil {
		return degraded(cfg.Logger, source, err)
	}

	return analyze(g, source, cfg)
}

// Analyze inspects an already built graph.
//
//  1. Mean weight over every edge (0 for an edgeless graph).
//  2. Suspicious edges: weight > Factor×mean, evaluated only when mean > 0.
//  3. Distances and negative-cycle edges from bellmanford.Run.
//
// Any failure, including a panic inside the computation, yields a degraded
// report; Analyze never panics and never returns an error value.
func Analyze(g *core.Graph, source core.NodeID, opts ...Option) Report {
	return analyze(g, source, resolve(opts))
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func analyze(g *core.Graph, source core.NodeID, cfg Options) (rep Report) {
	defer func() {
		if r := recover(); r != nil {
			rep = degraded(cfg.Logger, source, fmt.Errorf("anomaly: internal failure: %v", r))
		}
	}()

	if g == nil {
		return degraded(cfg.Logger, source, ErrNilGraph)
	}
	if !g.HasNode(source) {
		return degraded(cfg.Logger, source,
			fmt.Errorf("anomaly: start node %d not found (available %v): %w", source, g.Nodes(), core.ErrNodeNotFound))
	}

	edges := g.Edges()
	mean := 0.0
	if len(edges) > 0 {
		sum := 0.0
		for _, e := range edges {
			sum += e.Weight
		}
		mean = sum / float64(len(edges))
	}

	suspicious := make([]core.EdgeKey, 0)
	if mean > 0 {
		limit := cfg.Factor * mean
		for _, e := range edges {
			if e.Weight > limit {
				suspicious = append(suspicious, e.Key())
			}
		}
	}

	bf, err := bellmanford.Run(g, source, cfg.BellmanFord...)
	if err != nil {
		return degraded(cfg.Logger, source, err)
	}

	cfg.Logger.Debug("anomaly report",
		slog.Int64("source", int64(source)),
		slog.Float64("average_weight", mean),
		slog.Int("suspicious", len(suspicious)),
		slog.Int("negative_cycle_edges", len(bf.NegativeCycleEdges)))

	return Report{
		Status:             StatusSuccess,
		Distances:          bf.Distances,
		SuspiciousEdges:    suspicious,
		NegativeCycleEdges: bf.NegativeCycleEdges,
		AverageWeight:      mean,
	}
}

// degraded returns the uniform error-shaped report for err.
func degraded(l *slog.Logger, source core.NodeID, err error) Report {
	l.Warn("anomaly report degraded",
		slog.Int64("source", int64(source)),
		slog.String("error", err.Error()))

	return Report{
		Status:             StatusError,
		Message:            err.Error(),
		Distances:          core.DistanceMap{},
		SuspiciousEdges:    []core.EdgeKey{},
		NegativeCycleEdges: []core.EdgeKey{},
		err:                err,
	}
}
