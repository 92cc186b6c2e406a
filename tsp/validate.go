package tsp

import "github.com/katalvlaran/cerberon/core"

// filterNodes keeps the ids present in g, first occurrence only, in input order.
func filterNodes(g *core.Graph, nodes []core.NodeID) []core.NodeID {
	seen := make(map[core.NodeID]struct{}, len(nodes))
	out := make([]core.NodeID, 0, len(nodes))
	for _, id := range nodes {
		if !g.HasNode(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// degenerate answers inputs with fewer than two usable nodes.
// ok is false when the caller must run a real solver.
func degenerate(requested, valid []core.NodeID) (Tour, bool) {
	switch {
	case len(requested) == 0:
		return Tour{Order: []core.NodeID{}, Path: []core.NodeID{}, Distance: 0, Complete: true}, true
	case len(valid) == 0:
		return Tour{Distance: core.Infinity}, true
	case len(valid) == 1:
		return Tour{Order: []core.NodeID{valid[0]}, Path: []core.NodeID{valid[0]}, Distance: 0, Complete: true}, true
	}

	return Tour{}, false
}

// unsolved is the exact solver's answer when no permutation is feasible
// or the input exceeds the exact limit.
func unsolved() Tour { return Tour{Distance: core.Infinity} }
