// Package dfs provides depth-first path discovery over a core.Graph.
//
// Path(g, start, end) explores neighbors in ascending NodeID order and
// backtracks on dead ends; the first path that reaches end is returned. It
// is a valid path consistent with reachability, but not necessarily the
// shortest one (use package bfs for fewest edges).
//
// The visited set is shared by the whole search rather than scoped to the
// current path, so every vertex is entered at most once and cyclic graphs
// terminate.
//
// Errors:
//
//   - ErrGraphNil            nil graph
//   - ErrOptionViolation     negative WithMaxDepth (0 means no limit, as in bfs)
//   - core.ErrNodeNotFound   start or end absent (caller error, not "no path")
//   - ctx.Err()              cancellation via WithContext
//
// Unreachable targets yield a nil path and a nil error.
package dfs
