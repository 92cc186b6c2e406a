// Package cerberon is a graph analysis and tour-optimization engine for
// security operations: routing over network topologies, latency anomaly
// detection and inspection-tour planning, plus log ranking and search.
//
// Subpackages:
//
//	core/        validated, immutable weighted graph built from a YAML/JSON description
//	bfs/, dfs/   path discovery (fewest edges / depth-first)
//	dijkstra/    non-negative shortest paths, hop-count paths and distance trees
//	bellmanford/ distances with negative weights and negative-cycle edges
//	anomaly/     high-latency links and negative cycles, reported as a status document
//	tsp/         exact (small inputs) and nearest-neighbor closed tours
//	sorting/     traced merge/quick sort and binary/linear search
//	logrank/     log line parsing, ranking and slow-entry flagging
//	alerttree/   alert escalation trees in inorder, preorder, postorder and BFS order
//	builder/     deterministic topology generators for fixtures and benchmarks
//	engine/      facade with structured logging and Prometheus metrics
//	cmd/cerberon command-line front end
//
// Quick example:
//
//	desc, _ := core.Load("net.yaml")
//	g, _ := core.Build(desc)
//	res, _ := dijkstra.ShortestPath(g, 1, 4)
//	fmt.Println(res.Path, res.Distance)
package cerberon
