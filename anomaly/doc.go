// Package anomaly flags latency outliers and negative cycles in a network graph.
//
// An edge is suspicious when its weight exceeds twice the mean weight of all
// edges (the multiplier is configurable with WithFactor). Graphs without
// edges, or whose mean is not positive, report no suspicious edges. Distances
// and negative-cycle edges come from bellmanford.Run.
//
// Unlike the other packages, anomaly never returns an error value: every
// failure (malformed description, unknown source, internal panic) is folded
// into a Report with Status == StatusError and empty collections. Report.Err
// exposes the underlying error for callers that want errors.Is.
package anomaly
