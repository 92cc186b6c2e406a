// File: types.go
// Role: Node, Edge, EdgeKey, raw Description records, Graph, GraphOption and sentinel errors.
// Determinism:
//   - Node order is ascending NodeID; edge order is first-insertion order.
// Concurrency:
//   - A Graph is immutable once Build returns; concurrent readers need no locking.

package core

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrValidation indicates malformed graph input: a missing required field,
	// a non-finite weight, or an edge whose endpoint was never declared.
	ErrValidation = errors.New("core: invalid graph description")

	// ErrNodeNotFound indicates a query referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates a query referenced an edge absent from the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// NodeID is the unique key of a node within a Graph.
type NodeID int64

// Infinity is the sentinel distance for unreachable nodes.
var Infinity = math.Inf(1)

// Node is a validated graph vertex.
type Node struct {
	ID    NodeID `yaml:"id"`
	Label string `yaml:"label"`
	Group string `yaml:"group"`
}

// Edge is a validated weighted connection From→To.
// In an undirected graph the same Edge is traversable in both directions.
type Edge struct {
	From   NodeID  `yaml:"from"`
	To     NodeID  `yaml:"to"`
	Weight float64 `yaml:"weight"`
	Label  string  `yaml:"label"`
}

// Key returns the ordered endpoint pair of e.
func (e Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// EdgeKey identifies a traversable arc by its endpoints.
type EdgeKey struct {
	From NodeID `yaml:"from"`
	To   NodeID `yaml:"to"`
}

// DistanceMap maps every node to its best known distance from a fixed source.
// Unreachable nodes hold Infinity.
type DistanceMap map[NodeID]float64

// NodeSpec is a raw, caller-supplied node record. Pointer fields let the
// validator tell a missing field apart from a zero value.
type NodeSpec struct {
	ID    *NodeID `yaml:"id" validate:"required"`
	Label *string `yaml:"label" validate:"required"`
	Group *string `yaml:"group" validate:"required"`
}

// EdgeSpec is a raw, caller-supplied edge record. Label is optional.
type EdgeSpec struct {
	From   *NodeID  `yaml:"from" validate:"required"`
	To     *NodeID  `yaml:"to" validate:"required"`
	Weight *float64 `yaml:"weight" validate:"required"`
	Label  string   `yaml:"label"`
}

// Description is the caller-facing graph input: {nodes: [...], edges: [...]}.
type Description struct {
	Nodes []NodeSpec `yaml:"nodes" validate:"dive"`
	Edges []EdgeSpec `yaml:"edges" validate:"dive"`
}

// NewNodeSpec returns a fully populated NodeSpec.
func NewNodeSpec(id NodeID, label, group string) NodeSpec {
	return NodeSpec{ID: &id, Label: &label, Group: &group}
}

// NewEdgeSpec returns a fully populated EdgeSpec.
func NewEdgeSpec(from, to NodeID, weight float64, label string) EdgeSpec {
	return EdgeSpec{From: &from, To: &to, Weight: &weight, Label: label}
}

// GraphOption configures Build.
type GraphOption func(o *buildOptions)

type buildOptions struct {
	directed bool
	validate *validator.Validate
}

// WithDirected sets edge orientation (true = directed, the default).
func WithDirected(directed bool) GraphOption {
	return func(o *buildOptions) { o.directed = directed }
}

// WithValidator replaces the shared validator instance, e.g. one carrying
// extra registered rules. A nil value is ignored.
func WithValidator(v *validator.Validate) GraphOption {
	return func(o *buildOptions) {
		if v != nil {
			o.validate = v
		}
	}
}

// Graph is an immutable weighted graph built from a Description.
//
// nodes holds node attributes; order caches node IDs ascending.
// edges keeps unique edges in first-insertion order; index maps the
// canonical endpoint pair to the edge position (for undirected graphs the
// pair is normalized so that From <= To).
// adj holds ascending neighbor lists per node.
type Graph struct {
	directed bool

	nodes map[NodeID]Node
	order []NodeID

	edges []Edge
	index map[EdgeKey]int

	adj map[NodeID][]NodeID
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Directed  bool
	NodeCount int
	EdgeCount int
	SelfLoops int
	Groups    map[string]int
}
