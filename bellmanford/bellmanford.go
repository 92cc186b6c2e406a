// File: bellmanford.go
// Role: Single-source relaxation tolerant of negative weights, with
//       negative-cycle edge reporting.
// Determinism:
//   - Arcs are relaxed in core.Graph.Arcs() order (first insertion), so
//     both distances and the reported edge list are reproducible.
// Concurrency:
//   - Stateless across calls; the graph is only read.

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// Run computes distances from source to every node of g.
//
// Steps:
//  1. dist[v] = +Inf for all v, dist[source] = 0.
//  2. Up to |V|-1 passes over every arc u→v: if dist[u]+w < dist[v], lower
//     dist[v]. A pass that changes nothing ends relaxation early.
//  3. One more scan collects every arc that is still relaxable.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - core.ErrNodeNotFound (wrapped) if source is absent.
//   - ctx.Err() on cancellation between passes.
//
// Complexity: O(V·E) time, O(V) space.
func Run(g *core.Graph, source core.NodeID, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(source) {
		return Result{}, fmt.Errorf("bellmanford: source: %w: %d", core.ErrNodeNotFound, source)
	}

	dist := make(core.DistanceMap, g.NodeCount())
	for _, v := range g.Nodes() {
		dist[v] = core.Infinity
	}
	dist[source] = 0

	arcs := g.Arcs()
	for pass := 1; pass < g.NodeCount(); pass++ {
		select {
		case <-cfg.Ctx.Done():
			return Result{}, cfg.Ctx.Err()
		default:
		}

		changed := false
		for _, a := range arcs {
			if relaxable(dist, a) {
				dist[a.To] = dist[a.From] + a.Weight
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	negative := make([]core.EdgeKey, 0)
	for _, a := range arcs {
		if relaxable(dist, a) {
			negative = append(negative, a.Key())
		}
	}

	return Result{Distances: dist, NegativeCycleEdges: negative}, nil
}

// relaxable reports whether arc a would lower dist[a.To]. An unreached
// tail never relaxes (+Inf + w stays +Inf for finite w).
func relaxable(dist core.DistanceMap, a core.Edge) bool {
	return dist[a.From]+a.Weight < dist[a.To]
}
