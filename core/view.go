// File: view.go
// Role: Non-mutating derived graphs (same topology, altered weights).
// Concurrency:
//   - The source graph is only read; the result shares no mutable state with it.

package core

import (
	"fmt"
	"math"
)

// WithUniformWeights returns a derived Graph with identical nodes, edges and
// orientation where every edge weight is w. Used for hop counting (w = 1).
// The receiver is not modified.
//
// Errors: ErrValidation if w is NaN or ±Inf, the same rule Build applies.
//
// Complexity: O(V + E).
func (g *Graph) WithUniformWeights(w float64) (*Graph, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, fmt.Errorf("%w: uniform weight %v is not finite", ErrValidation, w)
	}

	out := &Graph{
		directed: g.directed,
		nodes:    make(map[NodeID]Node, len(g.nodes)),
		order:    make([]NodeID, len(g.order)),
		edges:    make([]Edge, len(g.edges)),
		index:    make(map[EdgeKey]int, len(g.index)),
		adj:      make(map[NodeID][]NodeID, len(g.adj)),
	}
	for id, n := range g.nodes {
		out.nodes[id] = n
	}
	copy(out.order, g.order)
	for i, e := range g.edges {
		e.Weight = w
		out.edges[i] = e
	}
	for k, pos := range g.index {
		out.index[k] = pos
	}
	for id, nbrs := range g.adj {
		cp := make([]NodeID, len(nbrs))
		copy(cp, nbrs)
		out.adj[id] = cp
	}

	return out, nil
}
