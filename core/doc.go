// Package core provides the validated, immutable graph model shared by every
// algorithm package in this module.
//
// A Graph G = (V,E) is built once from a caller-supplied Description:
//
//	nodes: [{id, label, group}, ...]
//	edges: [{from, to, weight, label}, ...]
//
// Build rejects the description with ErrValidation when a node lacks an id,
// label or group, when an edge lacks from, to or weight, when a weight is NaN
// or infinite, or when an edge references a node that was not declared.
// Re-declaring a node ID overwrites its attributes; a second edge between the
// same endpoints overwrites the first (multi-edges are not supported).
//
// Orientation:
//
//   - WithDirected(true) (default): (a,b) and (b,a) are independent arcs.
//   - WithDirected(false): every edge is symmetric.
//
// Determinism:
//
//   - Nodes() and Neighbors() return IDs in ascending order.
//   - Edges() and Arcs() return edges in first-insertion order.
//
// Concurrency:
//
//	A Graph is never mutated after Build returns. Any number of goroutines may
//	read it at the same time without locking. Derived graphs such as
//	WithUniformWeights(1) (the "hop graph") are fresh copies.
//
// Errors:
//
//	ErrValidation   - malformed description (structural, caller bug).
//	ErrNodeNotFound - a query referenced an absent node.
//	ErrEdgeNotFound - a query referenced an absent edge.
package core
