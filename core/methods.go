// File: methods.go
// Role: Read-only queries over a built Graph: nodes, edges, arcs, neighbors and weights.
// Determinism:
//   - Nodes() and Neighbors() are ascending by NodeID.
//   - Edges() and Arcs() follow first-insertion order.
// Concurrency:
//   - All methods are read-only; returned slices are fresh copies.

package core

import "fmt"

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// HasNode reports whether id was declared.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the attributes of id.
func (g *Graph) Node(id NodeID) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return n, nil
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every edge once, in first-insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Arcs returns every edge as a traversable directed arc, in first-insertion
// order. For undirected graphs each edge yields From→To followed by To→From
// (a self-loop yields a single arc).
//
// Complexity: O(E).
func (g *Graph) Arcs() []Edge {
	if g.directed {
		return g.Edges()
	}
	out := make([]Edge, 0, 2*len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
		if e.From != e.To {
			out = append(out, Edge{From: e.To, To: e.From, Weight: e.Weight, Label: e.Label})
		}
	}
	return out
}

// Neighbors returns the nodes reachable from id over a single arc,
// ascending by NodeID. For directed graphs only outgoing arcs count.
//
// Errors: ErrNodeNotFound if id is absent.
//
// Complexity: O(d) where d is the out-degree of id.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	nbrs := g.adj[id]
	out := make([]NodeID, len(nbrs))
	copy(out, nbrs)
	return out, nil
}

// HasEdge reports whether an arc u→v exists (either orientation when undirected).
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.index[g.canonical(u, v)]
	return ok
}

// Weight returns the weight of arc u→v.
//
// Errors:
//   - ErrNodeNotFound if u or v is absent.
//   - ErrEdgeNotFound if both exist but are not adjacent.
func (g *Graph) Weight(u, v NodeID) (float64, error) {
	e, err := g.Edge(u, v)
	if err != nil {
		return 0, err
	}
	return e.Weight, nil
}

// Edge returns the edge stored for arc u→v. In undirected graphs the
// stored orientation is the one first inserted.
func (g *Graph) Edge(u, v NodeID) (Edge, error) {
	if _, ok := g.nodes[u]; !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if _, ok := g.nodes[v]; !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	pos, ok := g.index[g.canonical(u, v)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
	}
	return g.edges[pos], nil
}

// Stats produces a summary of orientation, sizes, self-loops and group sizes.
//
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		Directed:  g.directed,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Groups:    make(map[string]int),
	}
	for _, n := range g.nodes {
		s.Groups[n.Group]++
	}
	for _, e := range g.edges {
		if e.From == e.To {
			s.SelfLoops++
		}
	}
	return s
}
