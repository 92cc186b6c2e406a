package builder

import (
	"math/rand"
	"strconv"
)

// config is resolved once per Build call and shared by every constructor.
type config struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	labelFn  func(int) string
	group    string
}

const (
	defaultWeight = 1.0
	defaultGroup  = "lan"
)

func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: ConstantWeight(defaultWeight),
		labelFn:  hostLabel,
		group:    defaultGroup,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// hostLabel names node i "host-i".
func hostLabel(i int) string { return "host-" + strconv.Itoa(i) }

func (c config) weight() float64 { return c.weightFn(c.rng) }
