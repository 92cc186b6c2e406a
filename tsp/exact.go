package tsp

import (
	"context"

	"github.com/katalvlaran/cerberon/core"
)

// exactTour enumerates every permutation of nodes[1:] with nodes[0] fixed as
// the start and return point and keeps the cheapest closed tour.
//
// Permutations are generated in lexicographic order of input positions and
// only a strictly cheaper tour replaces the incumbent, so among equal-cost
// tours the first enumerated wins. A permutation containing an unreachable
// leg is skipped, not fatal. ctx is checked before each permutation.
//
// Complexity: O((n-1)! · n) leg lookups.
func exactTour(ctx context.Context, o *oracle, nodes []core.NodeID) (Tour, error) {
	n := len(nodes)
	start := nodes[0]
	rest := nodes[1:]

	best := unsolved()
	bestOrder := make([]core.NodeID, 0, n+1)

	order := make([]core.NodeID, 0, n+1)
	order = append(order, start)
	used := make([]bool, len(rest))

	var permute func() error
	permute = func() error {
		if len(order) == n {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			total := 0.0
			for i := 0; i < n; i++ {
				next := start
				if i+1 < n {
					next = order[i+1]
				}
				c, ok := o.leg(order[i], next)
				if !ok {
					return nil
				}
				total += c
			}
			if total < best.Distance {
				best.Distance = total
				bestOrder = append(bestOrder[:0], order...)
			}
			return nil
		}

		for i, id := range rest {
			if used[i] {
				continue
			}
			used[i] = true
			order = append(order, id)
			if err := permute(); err != nil {
				return err
			}
			order = order[:len(order)-1]
			used[i] = false
		}
		return nil
	}
	if err := permute(); err != nil {
		return Tour{}, err
	}

	if len(bestOrder) == 0 {
		return best, nil
	}
	best.Order = append(bestOrder, start)
	best.Path = o.walk(best.Order)
	best.Closed = true
	best.Complete = true

	return best, nil
}
