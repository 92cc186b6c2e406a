// Package tsp plans closed tours over a subset of graph nodes.
//
// Given nodes S, a tour starts at S[0], visits every other node of S and
// returns to S[0]. Moving between two tour nodes costs the direct edge
// weight when one exists and the weighted shortest-path distance otherwise;
// in the latter case the expanded Tour.Path lists the intermediate hops.
//
// Two solvers are provided:
//
//   - Exact enumerates all (|S|-1)! permutations. It runs only when
//     |S| <= MaxExactNodes (configurable with WithExactLimit). Permutations
//     with an unreachable leg are skipped.
//   - NearestNeighbor greedily extends a tour from every start in S and
//     keeps the shortest result. Partial tours (nothing unvisited reachable)
//     and open tours (no way back) are valid outcomes, flagged by
//     Tour.Complete and Tour.Closed.
//
// Solve runs both over one shared distance oracle. Every entry point takes
// a context.Context, checked between permutations and greedy steps.
//
//	sol, err := tsp.Solve(ctx, g, []core.NodeID{1, 2, 3, 4})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sol.Optimal.Order, sol.Optimal.Distance)
package tsp
