// File: dijkstra.go
// Role: Single-pair shortest path with a path-carrying frontier.
// Determinism:
//   - Frontier entries are ordered by (distance, node ID, path lexicographic),
//     so equal-cost alternatives always resolve the same way.
// Concurrency:
//   - Stateless across calls; the graph is only read.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// ShortestPath returns the minimum-weight path from start to end.
//
// Each frontier entry carries its full path; a node is finalized the first
// time it is popped, and the search stops as soon as end is popped. Edge
// weights must be non-negative: with negative weights the result is
// undefined (use bellmanford instead). This is a precondition and is not
// checked.
//
// Unreachable end → Result{Path: nil, Distance: +Inf}, nil error.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - core.ErrNodeNotFound if start or end is absent.
//   - ErrBadMaxDistance for an invalid WithMaxDistance.
//   - ctx.Err() on cancellation.
//
// Complexity: O(E log E) heap work, plus O(V) per push for path copies.
func ShortestPath(g *core.Graph, start, end core.NodeID, opts ...Option) (Result, error) {
	unreachable := Result{Distance: core.Infinity}
	cfg, err := resolve(opts)
	if err != nil {
		return unreachable, err
	}
	if g == nil {
		return unreachable, ErrNilGraph
	}
	if !g.HasNode(start) {
		return unreachable, fmt.Errorf("dijkstra: start: %w: %d", core.ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return unreachable, fmt.Errorf("dijkstra: end: %w: %d", core.ErrNodeNotFound, end)
	}

	pq := pathPQ{{id: start, dist: 0, path: []core.NodeID{start}}}
	seen := make(map[core.NodeID]bool, g.NodeCount())

	for pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return unreachable, cfg.Ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*pathItem)
		if seen[item.id] {
			continue // stale entry
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		seen[item.id] = true

		if item.id == end {
			return Result{Path: item.path, Distance: item.dist}, nil
		}

		nbrs, _ := g.Neighbors(item.id)
		for _, v := range nbrs {
			if seen[v] {
				continue
			}
			w, _ := g.Weight(item.id, v)
			path := make([]core.NodeID, len(item.path)+1)
			copy(path, item.path)
			path[len(item.path)] = v
			heap.Push(&pq, &pathItem{id: v, dist: item.dist + w, path: path})
		}
	}

	return unreachable, nil
}

// HopPath returns the path from start to end with the fewest edges,
// computed as ShortestPath over a copy of g whose weights are all 1.
// Distance is the hop count.
func HopPath(g *core.Graph, start, end core.NodeID, opts ...Option) (Result, error) {
	if g == nil {
		return Result{Distance: core.Infinity}, ErrNilGraph
	}

	hops, err := g.WithUniformWeights(1)
	if err != nil {
		return Result{Distance: core.Infinity}, err
	}

	return ShortestPath(hops, start, end, opts...)
}

// pathItem is a frontier entry carrying the path that reached id.
type pathItem struct {
	id   core.NodeID
	dist float64
	path []core.NodeID
}

// pathPQ is a min-heap of *pathItem ordered by (dist, id, path).
type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.id != b.id {
		return a.id < b.id
	}

	return lessPath(a.path, b.path)
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// lessPath compares two node sequences lexicographically.
func lessPath(a, b []core.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
