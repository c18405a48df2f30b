// SPDX-License-Identifier: MIT

// Package setcover - validation helpers shared by the solvers.
//
// All checks are side-effect free and never panic; failures are reported
// with a method-prefixed wrap of a sentinel from errors.go.
package setcover

import (
	"fmt"
	"math"
)

// validateOptions checks Options without looking at the instance.
//
// Complexity: O(1).
func validateOptions(method string, opts Options) error {
	if opts.MaxPicks < 0 {
		return fmt.Errorf("%s: MaxPicks=%d < 0: %w", method, opts.MaxPicks, ErrInvalidOptions)
	}

	return nil
}

// validateCosts enforces len(costs)==m and 0 < cost < +Inf for every entry.
//
// Complexity: O(m).
func validateCosts(method string, costs []float64, m int) error {
	if len(costs) != m {
		return fmt.Errorf("%s: len(costs)=%d, len(candidates)=%d: %w",
			method, len(costs), m, ErrDimensionMismatch)
	}
	for i, c := range costs {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return fmt.Errorf("%s: costs[%d]=%g: %w", method, i, c, ErrInvalidCost)
		}
	}

	return nil
}

// Verify checks res against the inputs it was computed from:
//   - every chosen index lies in [0, len(candidates)),
//   - no index is chosen twice (hence at most len(candidates) picks),
//   - res.Covered equals the union of the chosen candidates exactly.
//
// Verify says nothing about completeness; use Result.Complete for that.
// Results of Solve with RestrictToUniverse are checked with VerifyRestricted.
//
// Complexity: O(k + Σ|S_chosen| + |Covered|).
func Verify[E comparable](candidates []Set[E], res Result[E]) error {
	seen := make(map[int]struct{}, len(res.Chosen))
	union := make(Set[E])

	for step, i := range res.Chosen {
		if i < 0 || i >= len(candidates) {
			return fmt.Errorf("%s: step %d picks %d, len(candidates)=%d: %w",
				methodVerify, step, i, len(candidates), ErrIndexOutOfRange)
		}
		if _, dup := seen[i]; dup {
			return fmt.Errorf("%s: step %d picks %d again: %w", methodVerify, step, i, ErrDuplicatePick)
		}
		seen[i] = struct{}{}
		union.Union(candidates[i])
	}

	if !union.Equal(res.Covered) {
		return fmt.Errorf("%s: |union|=%d, |covered|=%d: %w",
			methodVerify, union.Len(), res.Covered.Len(), ErrCoverMismatch)
	}

	return nil
}

// VerifyRestricted is Verify for results produced with
// Options.RestrictToUniverse: each candidate is intersected with universe
// before the union is compared.
func VerifyRestricted[E comparable](universe Set[E], candidates []Set[E], res Result[E]) error {
	return Verify(restrict(universe, candidates), res)
}
