// Package dfs implements depth-first path search on core.Graph.
//
// Key features:
//   - Path(g, start, end, opts...): first path found in ascending-neighbor order
//   - A visited set shared across the whole search: cycles are safe and no
//     vertex is entered twice, even through a different branch
//   - Hooks: OnVisit (pre-order) with error abort
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus one path copy per vertex entered.
//   - Memory: O(V) for recursion stack and visited set.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrOptionViolation        if an option is invalid (negative MaxDepth).
//   - core.ErrNodeNotFound      if start or end is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	end     core.NodeID
	visited map[core.NodeID]bool
}

// Path returns the first path from start to end discovered by depth-first
// search, or nil when end is unreachable. The result is a valid path but not
// necessarily the shortest one.
func Path(g *core.Graph, start, end core.NodeID, opts ...Option) ([]core.NodeID, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Verify endpoints
	if !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start: %w: %d", core.ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("dfs: end: %w: %d", core.ErrNodeNotFound, end)
	}

	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		end:     end,
		visited: make(map[core.NodeID]bool, g.NodeCount()),
	}

	return w.traverse(start, nil)
}

// traverse extends prefix with id, then recurses into unvisited neighbors.
// It returns the first complete path found, nil when this branch is a dead end.
func (w *dfsWalker) traverse(id core.NodeID, prefix []core.NodeID) ([]core.NodeID, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	depth := len(prefix)

	// 2. Extend the path with a private copy so sibling branches never share backing arrays
	path := make([]core.NodeID, depth+1)
	copy(path, prefix)
	path[depth] = id
	w.visited[id] = true

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	if id == w.end {
		return path, nil
	}

	// 4. Depth limit: do not descend further
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil, nil
	}

	// 5. Explore each neighbor in ascending order
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	var found []core.NodeID
	for _, nid := range nbs {
		if w.visited[nid] {
			continue
		}
		if found, err = w.traverse(nid, path); err != nil || found != nil {
			return found, err
		}
	}

	return nil, nil
}
