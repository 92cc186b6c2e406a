// File: build.go
// Role: Build turns a raw Description into an immutable Graph.
// Determinism:
//   - Nodes are applied in input order (later duplicates overwrite attributes),
//     edges in input order (later duplicates overwrite weight and label but keep
//     the first insertion position).
// Concurrency:
//   - The shared validator is safe for concurrent use; Build itself touches no shared state.

package core

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// defaultValidate reports field names by their yaml tags so messages match
// the caller's input ("nodes[1].label" rather than "Nodes[1].Label").
var defaultValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Build validates desc and constructs a Graph.
//
// Steps:
//  1. Required-field validation of every NodeSpec and EdgeSpec.
//  2. Register nodes; a repeated ID overwrites label and group.
//  3. Register edges; reject non-finite weights and undeclared endpoints.
//  4. Freeze: sort node IDs and neighbor lists.
//
// Errors: every failure wraps ErrValidation.
//
// Complexity: O(V log V + E log E).
func Build(desc Description, opts ...GraphOption) (*Graph, error) {
	o := buildOptions{directed: true, validate: defaultValidate}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate.Struct(desc); err != nil {
		return nil, validationError(err)
	}

	g := &Graph{
		directed: o.directed,
		nodes:    make(map[NodeID]Node, len(desc.Nodes)),
		index:    make(map[EdgeKey]int, len(desc.Edges)),
		adj:      make(map[NodeID][]NodeID, len(desc.Nodes)),
	}

	for _, ns := range desc.Nodes {
		g.nodes[*ns.ID] = Node{ID: *ns.ID, Label: *ns.Label, Group: *ns.Group}
	}

	for i, es := range desc.Edges {
		e := Edge{From: *es.From, To: *es.To, Weight: *es.Weight, Label: es.Label}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edges[%d] %d→%d has non-finite weight %v", ErrValidation, i, e.From, e.To, e.Weight)
		}
		if _, ok := g.nodes[e.From]; !ok {
			return nil, fmt.Errorf("%w: edges[%d] references undeclared node %d", ErrValidation, i, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return nil, fmt.Errorf("%w: edges[%d] references undeclared node %d", ErrValidation, i, e.To)
		}
		g.putEdge(e)
	}

	g.freeze()

	return g, nil
}

// putEdge inserts e or overwrites the existing edge between the same endpoints.
func (g *Graph) putEdge(e Edge) {
	k := g.canonical(e.From, e.To)
	if pos, ok := g.index[k]; ok {
		g.edges[pos].Weight = e.Weight
		g.edges[pos].Label = e.Label
		return
	}
	g.index[k] = len(g.edges)
	g.edges = append(g.edges, e)
}

// canonical normalizes an endpoint pair for index lookups.
func (g *Graph) canonical(u, v NodeID) EdgeKey {
	if !g.directed && v < u {
		u, v = v, u
	}
	return EdgeKey{From: u, To: v}
}

// freeze derives the sorted node order and neighbor lists.
func (g *Graph) freeze() {
	g.order = make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		g.order = append(g.order, id)
	}
	sort.Slice(g.order, func(i, j int) bool { return g.order[i] < g.order[j] })

	seen := make(map[EdgeKey]struct{}, 2*len(g.edges))
	link := func(u, v NodeID) {
		k := EdgeKey{From: u, To: v}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
	}
	for _, e := range g.edges {
		link(e.From, e.To)
		if !g.directed {
			link(e.To, e.From)
		}
	}
	for id, nbrs := range g.adj {
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		g.adj[id] = nbrs
	}
}

// validationError flattens validator output into one ErrValidation message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Description.nodes[0].label"; drop the root type name.
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		parts = append(parts, fmt.Sprintf("%s is %s", ns, fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(parts, "; "))
}
