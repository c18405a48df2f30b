// SPDX-License-Identifier: MIT
// Package: apcover/instance
//
// options.go - functional options for Random.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Random itself never panics.
//   • Determinism is explicit: WithSeed or WithRand; the default is DefaultSeed.

package instance

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customizes Random.
type Option func(*config)

// config is the resolved option set.
type config struct {
	rng       *rand.Rand
	withCosts bool
	costLo    float64
	costHi    float64
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = NewRand(0)
	}

	return c
}

// WithSeed draws from a fresh stream seeded with seed (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = NewRand(seed)
	}
}

// WithRand draws from r. Panics on nil. The caller keeps ownership of r and
// must not use it concurrently with Random.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// CheckCostRange reports whether [lo, hi) is a usable cost range: both
// bounds finite and 0 < lo <= hi. Callers holding user input check here
// before building WithCostRange.
func CheckCostRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo <= 0 || hi < lo {
		return fmt.Errorf("CheckCostRange: [%g, %g] needs finite 0 < lo <= hi: %w", lo, hi, ErrInvalidCostRange)
	}

	return nil
}

// WithCostRange attaches a cost to every AP drawn uniformly from [lo, hi).
// Panics when CheckCostRange rejects the bounds.
func WithCostRange(lo, hi float64) Option {
	if err := CheckCostRange(lo, hi); err != nil {
		panic(err.Error())
	}
	return func(c *config) {
		c.withCosts = true
		c.costLo, c.costHi = lo, hi
	}
}
