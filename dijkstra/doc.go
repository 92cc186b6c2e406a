// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath answers a single (start, end) query. Frontier entries carry
//     their whole path and are ordered by (distance, node ID, path), so ties
//     between equal-cost routes resolve deterministically.
//   - HopPath runs the same search over a derived graph with every weight set
//     to 1, yielding the path with the fewest hops.
//   - Distances builds the full single-source tree (distance + predecessor
//     maps) and is used as a distance oracle by tsp; PathTo rebuilds a path
//     from the predecessor map.
//
// Preconditions:
//
//   - Weights must be non-negative. Negative weights are not detected and
//     produce undefined results; use package bellmanford for such graphs.
//
// Complexity:
//
//   - Distances:    O((V + E) log V) time, O(V + E) space.
//   - ShortestPath: O(E log E) heap work plus path copies.
//
// Errors (sentinel):
//
//   - ErrNilGraph       nil graph pointer.
//   - ErrBadMaxDistance negative or NaN WithMaxDistance value.
//   - core.ErrNodeNotFound (wrapped) when an endpoint is absent.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, 1, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Distance)
package dijkstra
