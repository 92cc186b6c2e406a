// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm over a core.Graph.
//
// Unlike dijkstra it accepts negative edge weights. After |V|-1 relaxation
// passes a final scan reports every arc that could still be relaxed; a
// non-empty list means a negative cycle is reachable from the source, and
// the distances of nodes downstream of it are not meaningful.
//
// Undirected graphs contribute both orientations of every edge, so a single
// negative undirected edge already forms a negative cycle.
//
//	res, err := bellmanford.Run(g, 1)
//	if err != nil {
//	    return err
//	}
//	if res.HasNegativeCycle() {
//	    log.Println("negative cycle:", res.NegativeCycleEdges)
//	}
package bellmanford
