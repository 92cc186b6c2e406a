// File: solve.go
// Role: Public entry points. Filters the requested nodes, answers degenerate
//       inputs, builds one shared distance oracle and dispatches to the
//       exact and heuristic solvers.
// Determinism:
//   - Results depend only on the graph and the node order supplied; the
//     heuristic's concurrency does not affect which tour is returned.
// Concurrency:
//   - The graph is only read. Heuristic starts run on separate goroutines.

package tsp

import (
	"context"

	"github.com/katalvlaran/cerberon/core"
)

// Solve computes both the exact and the heuristic tour over nodes.
//
// Requested ids absent from g are dropped and duplicates keep their first
// occurrence. Degenerate inputs:
//   - no ids requested → both tours are empty with Distance 0;
//   - no id present in g → both tours are nil with Distance +Inf;
//   - one id → both tours are [id] with Distance 0.
//
// The exact tour is computed only when the filtered input has at most
// ExactLimit nodes; otherwise Optimal is nil with Distance +Inf.
//
// Weights must be non-negative (shortest-path legs use dijkstra).
//
// Errors: ErrNilGraph, ErrOptionViolation, ctx.Err() on cancellation.
func Solve(ctx context.Context, g *core.Graph, nodes []core.NodeID, opts ...Option) (Solution, error) {
	cfg, valid, o, done, err := prepare(ctx, g, nodes, opts)
	if err != nil {
		return Solution{}, err
	}
	if done != nil {
		return Solution{Optimal: *done, Heuristic: *done}, nil
	}

	sol := Solution{Optimal: unsolved()}
	if len(valid) <= cfg.ExactLimit {
		if sol.Optimal, err = exactTour(ctx, o, valid); err != nil {
			return Solution{}, err
		}
	}
	if sol.Heuristic, err = heuristicTour(ctx, o, valid, cfg.Workers); err != nil {
		return Solution{}, err
	}

	return sol, nil
}

// Exact computes only the exact tour. Inputs larger than ExactLimit yield
// an unsolved tour (nil Order, Distance +Inf) rather than an error.
func Exact(ctx context.Context, g *core.Graph, nodes []core.NodeID, opts ...Option) (Tour, error) {
	cfg, valid, o, done, err := prepare(ctx, g, nodes, opts)
	if err != nil {
		return Tour{}, err
	}
	if done != nil {
		return *done, nil
	}
	if len(valid) > cfg.ExactLimit {
		return unsolved(), nil
	}

	return exactTour(ctx, o, valid)
}

// NearestNeighbor computes only the heuristic tour.
func NearestNeighbor(ctx context.Context, g *core.Graph, nodes []core.NodeID, opts ...Option) (Tour, error) {
	cfg, valid, o, done, err := prepare(ctx, g, nodes, opts)
	if err != nil {
		return Tour{}, err
	}
	if done != nil {
		return *done, nil
	}

	return heuristicTour(ctx, o, valid, cfg.Workers)
}

// prepare validates arguments and builds the oracle. A non-nil done means
// the input was degenerate and already answered.
func prepare(ctx context.Context, g *core.Graph, nodes []core.NodeID, opts []Option) (Options, []core.NodeID, *oracle, *Tour, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	if g == nil {
		return cfg, nil, nil, nil, ErrNilGraph
	}
	valid := filterNodes(g, nodes)
	if t, ok := degenerate(nodes, valid); ok {
		return cfg, valid, nil, &t, nil
	}

	o, err := newOracle(ctx, g, valid, cfg.Workers)
	if err != nil {
		return cfg, nil, nil, nil, err
	}

	return cfg, valid, o, nil, nil
}
