package anomaly

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/cerberon/bellmanford"
	"github.com/katalvlaran/cerberon/core"
)

// Status is the outcome tag of a Report.
type Status string

const (
	// StatusSuccess marks a fully computed report.
	StatusSuccess Status = "success"
	// StatusError marks a degraded report; Message carries the cause.
	StatusError Status = "error"
)

// DefaultFactor is the multiple of the mean edge weight above which an
// edge is reported as suspicious.
const DefaultFactor = 2.0

// Report combines latency outliers with Bellman-Ford output.
//
// A degraded report has Status == StatusError, a non-empty Message, and
// empty (non-nil) collections with a zero AverageWeight, so every report
// has the same shape regardless of outcome.
type Report struct {
	Status             Status           `yaml:"status"`
	Message            string           `yaml:"message,omitempty"`
	Distances          core.DistanceMap `yaml:"distances"`
	SuspiciousEdges    []core.EdgeKey   `yaml:"suspicious_edges"`
	NegativeCycleEdges []core.EdgeKey   `yaml:"negative_cycle_edges"`
	AverageWeight      float64          `yaml:"average_weight"`

	err error
}

// Err returns the failure behind a degraded report, or nil on success.
// The returned error wraps the original cause (core.ErrValidation,
// core.ErrNodeNotFound, ...) so callers may use errors.Is.
func (r Report) Err() error {
	if r.Status != StatusError {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return errors.New(r.Message)
}

// Option configures Detect and Analyze.
type Option func(*Options)

// Options holds detector settings.
type Options struct {
	// Logger receives a Warn record for every degraded report and a Debug
	// summary for every successful one.
	Logger *slog.Logger

	// Factor is the outlier threshold multiplier (weight > Factor×mean).
	Factor float64

	// Build are forwarded to core.Build by Detect.
	Build []core.GraphOption

	// BellmanFord are forwarded to bellmanford.Run.
	BellmanFord []bellmanford.Option
}

// DefaultOptions returns a discard logger and DefaultFactor.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Factor: DefaultFactor,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFactor overrides the outlier multiplier. Non-positive values are ignored.
func WithFactor(f float64) Option {
	return func(o *Options) {
		if f > 0 {
			o.Factor = f
		}
	}
}

// WithBuildOptions forwards options to core.Build (used by Detect only).
func WithBuildOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.Build = append(o.Build, opts...) }
}

// WithBellmanFordOptions forwards options to bellmanford.Run.
func WithBellmanFordOptions(opts ...bellmanford.Option) Option {
	return func(o *Options) { o.BellmanFord = append(o.BellmanFord, opts...) }
}

// ErrNilGraph is reported (inside a degraded Report) when Analyze gets a nil graph.
var ErrNilGraph = errors.New("anomaly: graph is nil")
