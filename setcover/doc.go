// SPDX-License-Identifier: MIT

// Package setcover implements the classical greedy approximation for the
// (weighted and unweighted) SET COVER problem.
//
// 🚀 What is set cover?
//
//	Given a universe U and a collection of candidate subsets S₀…Sₘ₋₁,
//	pick as few subsets as possible whose union equals U. The decision
//	version is NP-complete; the greedy heuristic below is the standard
//	H(maxᵢ|Sᵢ|) ≈ ln|U| approximation. Typical uses:
//	  • Wi-Fi access point placement (rooms ↔ AP coverage areas)
//	  • Sensor / camera placement
//	  • Test-suite minimization
//
// ✨ Key features:
//   - generic over any comparable element type (Set[E])
//   - deterministic tie-break: lowest candidate index wins
//   - partial coverage is a normal result, never an error
//   - weighted variant (minimum cost per newly covered element)
//   - optional universe filtering, pick budget and OnPick hook
//   - Verify checks a result against its inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/apcover/setcover"
//
//	rooms := setcover.NewSet(0, 1, 2, 3)
//	aps := []setcover.Set[int]{
//	  setcover.NewSet(0, 1),
//	  setcover.NewSet(1, 2, 3),
//	  setcover.NewSet(0, 3),
//	}
//
//	res := setcover.Greedy(rooms, aps)
//	// res.Chosen  == [1 0]
//	// res.Covered == {0 1 2 3}
//
// Performance:
//
//   - Time:   O(k·Σ|Sᵢ|), k = number of picks ≤ m
//   - Memory: O(|U| + k)
//
// The package is pure: no logging, no I/O, no goroutines. Inputs are only
// read, so concurrent callers may share them as long as nobody mutates them
// during a call.
package setcover
