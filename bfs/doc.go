// Package bfs provides breadth-first path discovery over a core.Graph.
//
// What
//
//   - Path(g, start, end) answers "is end reachable from start, and what is
//     one fewest-edge path?".
//   - The frontier is a FIFO of (vertex, path) pairs.
//   - A vertex is marked visited only when it is dequeued. The same vertex
//     can therefore sit in the frontier several times; the earliest queued
//     path is the one returned.
//   - Supports hooks (OnEnqueue, OnDequeue), a MaxDepth limit (0 means no
//     limit, as in dfs) and cancellation through context.Context.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs in ascending order and BFS enqueues
//	them in that order, so among several fewest-edge paths the one that is
//	lexicographically smallest by vertex IDs is returned.
//
// Errors
//
//   - ErrGraphNil, ErrOptionViolation
//   - core.ErrNodeNotFound when start or end is absent (a caller error,
//     distinct from "no path", which is reported as a nil path).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) expansions, each copying a path of length ≤ V.
//   - Memory: O(E·V) worst case for queued paths.
//
// Usage
//
//	path, err := bfs.Path(g, 1, 9, bfs.WithContext(ctx))
//	if err != nil { /* ErrNodeNotFound, cancellation, ... */ }
//	if path == nil { /* unreachable */ }
package bfs
