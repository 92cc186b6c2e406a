package bellmanford

import (
	"context"
	"errors"

	"github.com/katalvlaran/cerberon/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// Result is the outcome of a single-source Bellman-Ford run.
//
// Distances covers every node of the graph; unreachable nodes hold
// core.Infinity. NegativeCycleEdges lists, in arc scan order, every arc
// that could still be relaxed after |V|-1 passes: each lies on a negative
// cycle or is reachable from one. It is empty (never nil) otherwise.
type Result struct {
	Distances          core.DistanceMap `yaml:"distances"`
	NegativeCycleEdges []core.EdgeKey   `yaml:"negative_cycle_edges"`
}

// HasNegativeCycle reports whether a negative cycle is reachable from the source.
func (r Result) HasNegativeCycle() bool { return len(r.NegativeCycleEdges) > 0 }

// Options configures Run.
type Options struct {
	// Ctx is checked once per relaxation pass.
	Ctx context.Context
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
