// File: oracle.go
// Role: Leg costs between tour nodes: direct edge when present, otherwise
//       the weighted shortest path from a precomputed Dijkstra tree.
// Concurrency:
//   - Trees are built in parallel with errgroup; afterwards the oracle is
//     read-only and shared by every solver goroutine.

package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cerberon/core"
	"github.com/katalvlaran/cerberon/dijkstra"
)

type tree struct {
	dist core.DistanceMap
	prev map[core.NodeID]core.NodeID
}

// oracle answers leg queries from any tour node.
type oracle struct {
	g     *core.Graph
	trees map[core.NodeID]tree
}

// newOracle runs dijkstra.Distances from every node of sources.
func newOracle(ctx context.Context, g *core.Graph, sources []core.NodeID, workers int) (*oracle, error) {
	slots := make([]tree, len(sources))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, s := range sources {
		eg.Go(func() error {
			dist, prev, err := dijkstra.Distances(g, s, dijkstra.WithContext(ctx))
			if err != nil {
				return err
			}
			slots[i] = tree{dist: dist, prev: prev}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	o := &oracle{g: g, trees: make(map[core.NodeID]tree, len(sources))}
	for i, s := range sources {
		o.trees[s] = slots[i]
	}

	return o, nil
}

// direct returns the weight of arc u→v when it exists.
func (o *oracle) direct(u, v core.NodeID) (float64, bool) {
	if !o.g.HasEdge(u, v) {
		return 0, false
	}
	w, err := o.g.Weight(u, v)
	return w, err == nil
}

// shortest returns the shortest-path distance u→v; +Inf if unreachable.
func (o *oracle) shortest(u, v core.NodeID) float64 {
	t, ok := o.trees[u]
	if !ok {
		return core.Infinity
	}
	d, ok := t.dist[v]
	if !ok {
		return core.Infinity
	}
	return d
}

// leg returns the cost of moving u→v, preferring a direct edge.
func (o *oracle) leg(u, v core.NodeID) (float64, bool) {
	if w, ok := o.direct(u, v); ok {
		return w, true
	}
	d := o.shortest(u, v)
	return d, d < core.Infinity
}

// expand returns the nodes walked after u to reach v (v included).
func (o *oracle) expand(u, v core.NodeID) []core.NodeID {
	if o.g.HasEdge(u, v) {
		return []core.NodeID{v}
	}
	p := dijkstra.PathTo(o.trees[u].prev, u, v)
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}

// walk expands a visiting order into a full node path.
func (o *oracle) walk(order []core.NodeID) []core.NodeID {
	if len(order) == 0 {
		return nil
	}
	path := []core.NodeID{order[0]}
	for i := 0; i+1 < len(order); i++ {
		path = append(path, o.expand(order[i], order[i+1])...)
	}

	return path
}
