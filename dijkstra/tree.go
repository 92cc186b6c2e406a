// File: tree.go
// Role: Single-source shortest-path tree (distances + predecessors).
// Determinism:
//   - Heap ties break by smaller node ID; relaxation is strict (<), so the
//     first predecessor to reach a distance keeps it.
// Concurrency:
//   - Stateless across calls; callers may share the returned maps read-only.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// Distances computes the shortest distance from source to every node of g.
//
// Returns:
//   - dist: every node of g; unreachable nodes (or nodes beyond MaxDistance)
//     hold core.Infinity.
//   - prev: prev[v] == u means the shortest path to v arrives from u. The
//     source and unreachable nodes have no entry.
//
// Non-negative weights are a precondition, as for ShortestPath.
//
// Complexity: O((V + E) log V) time, O(V + E) space (lazy decrease-key).
func Distances(g *core.Graph, source core.NodeID, opts ...Option) (core.DistanceMap, map[core.NodeID]core.NodeID, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("dijkstra: source: %w: %d", core.ErrNodeNotFound, source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(core.DistanceMap, g.NodeCount()),
		prev:    make(map[core.NodeID]core.NodeID, g.NodeCount()),
		visited: make(map[core.NodeID]bool, g.NodeCount()),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path src→dst from a predecessor map produced by
// Distances. It returns nil when dst was not reached from src.
func PathTo(prev map[core.NodeID]core.NodeID, src, dst core.NodeID) []core.NodeID {
	var rev []core.NodeID
	for cur := dst; ; {
		rev = append(rev, cur)
		if cur == src {
			break
		}
		p, ok := prev[cur]
		if !ok || len(rev) > len(prev)+1 {
			return nil
		}
		cur = p
	}

	path := make([]core.NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}

// runner holds the mutable state for a single Distances execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    core.DistanceMap
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(source core.NodeID) {
	for _, v := range r.g.Nodes() {
		r.dist[v] = core.Infinity
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the closest unfinalized node and relaxes its
// outgoing arcs until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}

	// Anything discovered but never finalized lies beyond the cap.
	for v := range r.dist {
		if !r.visited[v] {
			r.dist[v] = core.Infinity
			delete(r.prev, v)
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u core.NodeID) {
	nbrs, _ := r.g.Neighbors(u)
	for _, v := range nbrs {
		if r.visited[v] {
			continue
		}
		w, _ := r.g.Weight(u, v)
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id). Outdated entries
// stay in the heap and are skipped on pop (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
