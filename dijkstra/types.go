// Package dijkstra defines result types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cerberon/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// or NaN value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is the answer to a single-pair query.
//
// Path lists node IDs from start to end inclusive; it is nil when end is
// unreachable, in which case Distance is core.Infinity.
type Result struct {
	Path     []core.NodeID `yaml:"path"`
	Distance float64       `yaml:"distance"`
}

// Reachable reports whether the query found a path.
func (r Result) Reachable() bool { return r.Path != nil }

// Options configures the behavior of the Dijkstra algorithm.
//
// Ctx         – checked once per frontier pop; cancellation aborts the run.
// MaxDistance – frontier entries farther than this are never expanded.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Ctx         context.Context
	MaxDistance float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose
// distance would exceed max are treated as unreachable.
// Negative or NaN values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized with:
//   - Ctx:         context.Background()
//   - MaxDistance: +Inf (explore everything reachable)
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: core.Infinity,
	}
}

func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
