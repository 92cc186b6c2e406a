package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cerberon/core"
)

// MaxExactNodes is the default ceiling on tour size for the exact solver.
// Permutation enumeration costs (n-1)! leg sums, so larger inputs are
// answered by the heuristic only.
const MaxExactNodes = 8

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")
)

// Tour is one solver's answer.
//
// Order is the visiting order over the requested nodes; when the tour is
// closed the start node is repeated at the end. Path expands every leg
// that has no direct edge into the intermediate nodes of its shortest path,
// so consecutive Path entries are always adjacent in the graph.
//
// A nil Order with Distance == +Inf means no tour was produced.
type Tour struct {
	Order    []core.NodeID `yaml:"order"`
	Path     []core.NodeID `yaml:"path"`
	Distance float64       `yaml:"distance"`
	Closed   bool          `yaml:"closed"`
	Complete bool          `yaml:"complete"`
}

// Found reports whether the solver produced a tour.
func (t Tour) Found() bool { return t.Order != nil }

// Solution pairs the exact and heuristic tours for the same input.
type Solution struct {
	Optimal   Tour `yaml:"optimal"`
	Heuristic Tour `yaml:"heuristic"`
}

// Options configures the solvers.
type Options struct {
	// ExactLimit is the largest tour (after filtering) solved exactly.
	ExactLimit int

	// Workers bounds the goroutines used by the heuristic and by the
	// distance-oracle precomputation. Zero means one per start node.
	Workers int

	err error
}

// Option is a functional option for the tsp solvers.
type Option func(*Options)

// DefaultOptions returns ExactLimit = MaxExactNodes and unbounded Workers.
func DefaultOptions() Options {
	return Options{ExactLimit: MaxExactNodes}
}

// WithExactLimit changes the exact solver ceiling. Negative values are
// recorded and surface as ErrOptionViolation.
func WithExactLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ExactLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExactLimit = n
	}
}

// WithWorkers bounds heuristic concurrency. Negative values are recorded
// and surface as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
