// SPDX-License-Identifier: MIT
// Package: apcover/instance
//
// random.go - Random(n, m, p): Bernoulli AP coverage instances.
//
// Contract:
//   - n ≥ 0 rooms and m ≥ 0 APs (else ErrBadSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - AP j covers room i iff rng.Float64() < p; so p==0 covers nothing and
//     p==1 covers every room.
//   - Costs, when requested, are drawn after all coverage trials, so adding
//     WithCostRange never changes the coverage produced by a seed.
//
// Complexity:
//   - Time:  O(n·m) Bernoulli trials.
//   - Space: O(n + p·n·m) expected.

package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apcover/setcover"
)

const (
	methodRandom = "Random"
	probMin      = 0.0
	probMax      = 1.0
)

// DefaultCoverageProb is the per-(AP, room) coverage probability used by the
// experiments when none is configured.
const DefaultCoverageProb = 0.2

// Instance is one AP placement problem.
type Instance struct {
	// Rooms is the universe to cover.
	Rooms setcover.Set[int]

	// Coverage[j] is the set of rooms AP j reaches; j is the AP index.
	Coverage []setcover.Set[int]

	// Costs[j] is the price of installing AP j. nil for unweighted instances.
	Costs []float64
}

// Weighted reports whether the instance carries per-AP costs.
func (in Instance) Weighted() bool { return in.Costs != nil }

// Random samples an instance with rooms 0..n-1 and m APs, each covering each
// room independently with probability p.
func Random(n, m int, p float64, opts ...Option) (Instance, error) {
	if n < 0 || m < 0 {
		return Instance{}, fmt.Errorf("%s: n=%d, m=%d: %w", methodRandom, n, m, ErrBadSize)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return Instance{}, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandom, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng

	rooms := make(setcover.Set[int], n)
	for i := 0; i < n; i++ {
		rooms.Add(i)
	}

	var (
		coverage = make([]setcover.Set[int], m)
		i, j     int
	)
	for j = 0; j < m; j++ {
		coverage[j] = make(setcover.Set[int])
		for i = 0; i < n; i++ {
			if rng.Float64() < p {
				coverage[j].Add(i)
			}
		}
	}

	inst := Instance{Rooms: rooms, Coverage: coverage}
	if cfg.withCosts {
		inst.Costs = make([]float64, m)
		for j = 0; j < m; j++ {
			inst.Costs[j] = cfg.costLo + rng.Float64()*(cfg.costHi-cfg.costLo)
		}
	}

	return inst, nil
}
