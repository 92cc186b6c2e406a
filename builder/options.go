package builder

import "math/rand"

// Option configures Build.
type Option func(*config)

// WithSeed attaches a seeded RNG for reproducible draws.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWeightFn sets the edge weight generator. The RNG argument is nil when
// no RNG was configured. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithLabelScheme sets how node labels are derived from node IDs. Panics on nil.
func WithLabelScheme(fn func(id int) string) Option {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *config) { c.labelFn = fn }
}

// WithGroup sets the group assigned to every generated node.
func WithGroup(group string) Option {
	return func(c *config) { c.group = group }
}

// ConstantWeight returns a weight generator that always yields w.
func ConstantWeight(w float64) func(*rand.Rand) float64 {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight returns integer-valued weights drawn uniformly from
// [lo, hi]. Without an RNG it yields lo.
func UniformWeight(lo, hi int) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		if r == nil || hi <= lo {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}
