// File: engine.go
// Role: Facade running each analysis end to end (build graph, run the
//       algorithm, log, record metrics).
// Concurrency:
//   - An Engine holds only a logger, metrics and options; every method is
//     safe for concurrent use.

package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cerberon/tsp"
)

// Operation names used as the "operation" metric label and log attribute.
const (
	OpTraceRoutes   = "trace_routes"
	OpSecurePaths   = "secure_paths"
	OpDetectDelays  = "detect_delays"
	OpOptimizeTour  = "optimize_tour"
	OpRankLogs      = "rank_logs"
	OpFlagSlowLogs  = "flag_slow_logs"
	OpCompareSearch = "compare_search"
	OpTraceAlerts   = "trace_alerts"
)

// Result label values.
const (
	resultOK       = "ok"
	resultError    = "error"
	resultDegraded = "degraded"
)

// Engine runs the cerberon analyses over caller-supplied descriptions.
type Engine struct {
	log      *slog.Logger
	metrics  *metrics
	tourOpts []tsp.Option
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	tourOpts   []tsp.Option
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegisterer registers the engine metrics on r. Without it the
// collectors still count but are not exported. Registering two engines on
// the same registry panics.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) { c.registerer = r }
}

// WithTourOptions forwards options to every tsp call.
func WithTourOptions(opts ...tsp.Option) Option {
	return func(c *config) { c.tourOpts = append(c.tourOpts, opts...) }
}

// New builds an Engine.
func New(opts ...Option) *Engine {
	c := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&c)
	}

	return &Engine{
		log:      c.logger,
		metrics:  newMetrics(c.registerer),
		tourOpts: c.tourOpts,
	}
}

// observe records the outcome of one operation.
func (e *Engine) observe(op string, start time.Time, result string, err error) {
	elapsed := time.Since(start)
	e.metrics.operations.WithLabelValues(op, result).Inc()
	e.metrics.duration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		e.log.Warn("operation failed",
			slog.String("operation", op),
			slog.String("result", result),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return
	}
	e.log.Debug("operation finished",
		slog.String("operation", op),
		slog.String("result", result),
		slog.Duration("elapsed", elapsed))
}

func resultOf(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
