// Package engine wires the cerberon algorithms into ready-to-use analyses:
// route tracing (bfs + dfs), secure paths (weighted + hop count), delay
// detection (anomaly), tour optimisation (tsp), log ranking (logrank), alert
// tree tracing (alerttree) and a binary-versus-linear search comparison.
//
// Each call builds its own immutable graph from a core.Description, logs
// through log/slog and updates two Prometheus collectors:
//
//	cerberon_engine_operations_total{operation,result}
//	cerberon_engine_operation_duration_seconds{operation}
//
// result is "ok", "error" or, for DetectDelays only, "degraded".
package engine
