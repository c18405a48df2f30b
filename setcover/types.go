// SPDX-License-Identifier: MIT

package setcover

// Result holds the outcome of a greedy cover.
type Result[E comparable] struct {
	// Chosen lists candidate indices in pick order (first chosen first).
	// No index appears twice.
	Chosen []int

	// Covered is the union of candidates[i] for every i in Chosen.
	Covered Set[E]
}

// Complete reports whether every member of universe is covered.
func (r Result[E]) Complete(universe Set[E]) bool {
	return universe.CountNotIn(r.Covered) == 0
}

// Uncovered returns the members of universe that the result leaves out.
func (r Result[E]) Uncovered(universe Set[E]) Set[E] {
	return universe.Difference(r.Covered)
}

// WeightedResult is a Result together with the summed cost of the picks.
type WeightedResult[E comparable] struct {
	Result[E]

	// Cost is Σ costs[i] over Chosen.
	Cost float64
}

// PickFunc observes a single greedy pick: step is 0-based, index is the
// chosen candidate and gain the number of elements it newly covered.
type PickFunc func(step, index, gain int)

// Options configures Solve and SolveWeighted.
//
// Fields:
//   - RestrictToUniverse - ignore candidate elements that are not members of
//     the universe, both when scoring gain and when extending the cover.
//     false reproduces the literal behavior of Greedy, where such elements
//     count toward gain and may appear in Result.Covered.
//   - MaxPicks - stop after this many picks. 0 means no limit; negative
//     values are rejected with ErrInvalidOptions.
//   - OnPick - optional hook called after every pick.
type Options struct {
	RestrictToUniverse bool
	MaxPicks           int
	OnPick             PickFunc
}

// DefaultOptions returns the options under which Solve behaves exactly like
// Greedy.
func DefaultOptions() Options {
	return Options{}
}
