package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cerberon/core"
)

// nearestFrom builds a greedy tour over nodes starting at start.
//
// Each step moves to the closest unvisited node joined to the current one
// by a direct edge; if there is none, the closest unvisited node by
// shortest path is used instead. Ties go to the smaller node ID. The walk
// stops early when nothing unvisited is reachable. Finally the tour is
// closed back to start by a direct edge or shortest path when possible.
func nearestFrom(ctx context.Context, o *oracle, start core.NodeID, nodes []core.NodeID) (Tour, error) {
	unvisited := make(map[core.NodeID]bool, len(nodes))
	for _, id := range nodes {
		if id != start {
			unvisited[id] = true
		}
	}

	order := []core.NodeID{start}
	cur := start
	total := 0.0

	for len(unvisited) > 0 {
		select {
		case <-ctx.Done():
			return Tour{}, ctx.Err()
		default:
		}

		next, cost, ok := pick(nodes, unvisited, func(v core.NodeID) (float64, bool) {
			return o.direct(cur, v)
		})
		if !ok {
			next, cost, ok = pick(nodes, unvisited, func(v core.NodeID) (float64, bool) {
				d := o.shortest(cur, v)
				return d, d < core.Infinity
			})
		}
		if !ok {
			break
		}

		order = append(order, next)
		total += cost
		cur = next
		delete(unvisited, next)
	}

	t := Tour{Complete: len(unvisited) == 0}
	if len(order) > 1 {
		if c, ok := o.leg(cur, start); ok {
			order = append(order, start)
			total += c
			t.Closed = true
		}
	}
	t.Order = order
	t.Path = o.walk(order)
	t.Distance = total

	return t, nil
}

// pick returns the unvisited node with the lowest cost; ties → smaller ID.
func pick(nodes []core.NodeID, unvisited map[core.NodeID]bool, cost func(core.NodeID) (float64, bool)) (core.NodeID, float64, bool) {
	var (
		best     core.NodeID
		bestCost = core.Infinity
		found    bool
	)
	for _, v := range nodes {
		if !unvisited[v] {
			continue
		}
		c, ok := cost(v)
		if !ok {
			continue
		}
		if !found || c < bestCost || (c == bestCost && v < best) {
			best, bestCost, found = v, c, true
		}
	}

	return best, bestCost, found
}

// heuristicTour runs nearestFrom from every node concurrently and returns
// the lowest-distance result; ties go to the earlier start in nodes.
func heuristicTour(ctx context.Context, o *oracle, nodes []core.NodeID, workers int) (Tour, error) {
	slots := make([]Tour, len(nodes))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, s := range nodes {
		eg.Go(func() error {
			t, err := nearestFrom(ctx, o, s, nodes)
			if err != nil {
				return err
			}
			slots[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Tour{}, err
	}

	best := slots[0]
	for _, t := range slots[1:] {
		if t.Distance < best.Distance {
			best = t
		}
	}

	return best, nil
}
