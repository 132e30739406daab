// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// BuilderOption customizes the configuration shared by all constructors of
// one BuildGraph call.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph and passed by value.
type builderConfig struct {
	rng      *rand.Rand // nil: no randomness
	weightFn WeightFn
}

// newBuilderConfig applies opts over the deterministic defaults:
// no RNG, every weight DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
