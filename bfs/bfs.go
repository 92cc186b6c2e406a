// Package bfs finds a fewest-edge path between two vertices of a core.Graph
// using breadth-first search.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// queueItem pairs a vertex with the full path that reached it.
type queueItem struct {
	id   core.NodeID
	path []core.NodeID
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
}

// Path returns a fewest-edge path from start to end, or nil when end is
// unreachable. Neighbors are expanded in ascending NodeID order.
//
// A vertex is marked visited when it is dequeued, not when it is enqueued,
// so the frontier may hold several paths to the same vertex; the first one
// dequeued wins.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrNodeNotFound (start or
// end absent), or the context error on cancellation.
//
// Complexity: O(V + E) expansions; each carries a path copy of length ≤ V.
func Path(g *core.Graph, start, end core.NodeID, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: start: %w: %d", core.ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("bfs: end: %w: %d", core.ErrNodeNotFound, end)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
	}
	w.enqueue(start, []core.NodeID{start})

	return w.loop(end)
}

// enqueue appends an item and fires OnEnqueue.
func (w *walker) enqueue(id core.NodeID, path []core.NodeID) {
	w.opts.OnEnqueue(id, len(path)-1)
	w.queue = append(w.queue, queueItem{id: id, path: path})
}

// loop drains the frontier until end is dequeued, the frontier empties,
// or the context is cancelled.
func (w *walker) loop(end core.NodeID) ([]core.NodeID, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, len(item.path)-1)

		if item.id == end {
			return item.path, nil
		}
		if w.visited[item.id] {
			continue
		}
		w.visited[item.id] = true

		if err := w.expand(item); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand enqueues one extended path per neighbor, honoring MaxDepth.
func (w *walker) expand(item queueItem) error {
	depth := len(item.path) - 1
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range nbrs {
		next := make([]core.NodeID, len(item.path)+1)
		copy(next, item.path)
		next[len(item.path)] = nbr
		w.enqueue(nbr, next)
	}

	return nil
}
