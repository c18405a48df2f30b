// SPDX-License-Identifier: MIT

package setcover

import "fmt"

// SolveWeighted - weighted greedy set cover.
//
// Each round picks the candidate with the smallest cost per newly covered
// element, cost[i] / gain(i), among candidates with gain(i) > 0. Ties go to
// the lowest index. The loop stops when covered equals universe, when no
// candidate has positive gain, or when opts.MaxPicks is reached.
//
// With all costs equal the picks coincide with Solve.
//
// Errors:
//   - ErrInvalidInput      - universe is nil.
//   - ErrInvalidOptions    - opts.MaxPicks < 0.
//   - ErrDimensionMismatch - len(costs) != len(candidates).
//   - ErrInvalidCost       - some cost is NaN, ±Inf, zero or negative.
//
// Complexity: same as Greedy.
func SolveWeighted[E comparable](universe Set[E], candidates []Set[E], costs []float64, opts Options) (WeightedResult[E], error) {
	if err := validateInput(methodSolveWeighted, universe, opts); err != nil {
		return WeightedResult[E]{}, err
	}
	if err := validateCosts(methodSolveWeighted, costs, len(candidates)); err != nil {
		return WeightedResult[E]{}, err
	}

	cands := candidates
	if opts.RestrictToUniverse {
		cands = restrict(universe, candidates)
	}

	var (
		covered   = make(Set[E])
		chosen    = make([]int, 0)
		total     float64
		best      int
		bestGain  int
		bestRatio float64
		ratio     float64
		g         int
		i         int
	)

	for !covered.Equal(universe) {
		if opts.MaxPicks > 0 && len(chosen) >= opts.MaxPicks {
			break
		}

		best, bestGain, bestRatio = -1, 0, 0
		for i = 0; i < len(cands); i++ {
			g = cands[i].CountNotIn(covered)
			if g == 0 {
				continue
			}
			ratio = costs[i] / float64(g)
			if best < 0 || ratio < bestRatio {
				best, bestGain, bestRatio = i, g, ratio
			}
		}

		if best < 0 {
			break
		}

		chosen = append(chosen, best)
		covered.Union(cands[best])
		total += costs[best]
		if opts.OnPick != nil {
			opts.OnPick(len(chosen)-1, best, bestGain)
		}
	}

	return WeightedResult[E]{
		Result: Result[E]{Chosen: chosen, Covered: covered},
		Cost:   total,
	}, nil
}

// CostOf sums costs over chosen.
//
// Errors:
//   - ErrIndexOutOfRange - some index is outside costs.
func CostOf(costs []float64, chosen []int) (float64, error) {
	var total float64
	for _, i := range chosen {
		if i < 0 || i >= len(costs) {
			return 0, fmt.Errorf("CostOf: index %d, len(costs)=%d: %w", i, len(costs), ErrIndexOutOfRange)
		}
		total += costs[i]
	}

	return total, nil
}
