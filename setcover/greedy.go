// SPDX-License-Identifier: MIT

package setcover

import "fmt"

// Greedy - unweighted greedy set cover.
//
// Algorithm:
//  1. covered = ∅, chosen = [].
//  2. While covered ≠ universe:
//     a. For i = 0..m-1 compute gain(i) = |candidates[i] − covered|.
//     b. Keep the strictly greatest gain; on ties the lowest index wins.
//     c. If the best gain is 0 (or m == 0) stop.
//     d. Append the best index to chosen, covered ∪= candidates[best].
//  3. Return (chosen, covered).
//
// Gain counts every element not yet in covered, including elements that are
// not members of universe; such elements show up in Result.Covered. Use
// Solve with Options.RestrictToUniverse to filter them.
//
// Greedy is total: a nil universe behaves as an empty one and nil entries of
// candidates behave as empty sets. The result may be a partial cover.
//
// Complexity:
//
//	Time   = O(k·Σ|Sᵢ| + k·|U|), k ≤ m picks
//	Memory = O(|covered| + k)
func Greedy[E comparable](universe Set[E], candidates []Set[E]) Result[E] {
	return cover(universe, candidates, 0, nil)
}

// Solve runs Greedy under opts.
//
// Errors:
//   - ErrInvalidInput   - universe is nil.
//   - ErrInvalidOptions - opts.MaxPicks < 0.
func Solve[E comparable](universe Set[E], candidates []Set[E], opts Options) (Result[E], error) {
	if err := validateInput(methodSolve, universe, opts); err != nil {
		return Result[E]{}, err
	}

	cands := candidates
	if opts.RestrictToUniverse {
		cands = restrict(universe, candidates)
	}

	return cover(universe, cands, opts.MaxPicks, opts.OnPick), nil
}

// cover is the greedy loop shared by Greedy and Solve. maxPicks == 0 means
// unlimited.
func cover[E comparable](universe Set[E], candidates []Set[E], maxPicks int, onPick PickFunc) Result[E] {
	var (
		covered = make(Set[E])
		chosen  = make([]int, 0)
		best    int
		gain    int
		g       int
		i       int
	)

	for !covered.Equal(universe) {
		if maxPicks > 0 && len(chosen) >= maxPicks {
			break
		}

		// Scan with '>' so the first maximal candidate is kept.
		best, gain = -1, 0
		for i = 0; i < len(candidates); i++ {
			g = candidates[i].CountNotIn(covered)
			if g > gain {
				best, gain = i, g
			}
		}

		// No candidate adds anything: stalled, possibly on a partial cover.
		if gain == 0 || best < 0 {
			break
		}

		chosen = append(chosen, best)
		covered.Union(candidates[best])
		if onPick != nil {
			onPick(len(chosen)-1, best, gain)
		}
	}

	return Result[E]{Chosen: chosen, Covered: covered}
}

// restrict returns candidates[i] ∩ universe for every i. The inputs are not
// modified.
func restrict[E comparable](universe Set[E], candidates []Set[E]) []Set[E] {
	out := make([]Set[E], len(candidates))
	for i, c := range candidates {
		out[i] = c.Intersect(universe)
	}

	return out
}

// validateInput checks the arguments common to Solve and SolveWeighted.
func validateInput[E comparable](method string, universe Set[E], opts Options) error {
	if universe == nil {
		return fmt.Errorf("%s: universe is nil: %w", method, ErrInvalidInput)
	}

	return validateOptions(method, opts)
}
