// SPDX-License-Identifier: MIT

// Package apcover chooses Wi-Fi access points (APs) so that their combined
// coverage includes every room of a building, using the greedy set-cover
// approximation.
//
// 🚀 What is in apcover?
//
//	• setcover/ - generic greedy solver (unweighted + weighted), Set type,
//	              result verification
//	• instance/ - random Bernoulli AP/room instances, YAML instance files
//	• bench/    - timing harness with injected clock, seed and logger
//	• config/   - viper-backed experiment settings
//	• cmd/apcover - CLI: generate, solve, bench
//
// Quick example:
//
//	rooms:  {0, 1, 2, 3}
//	AP 0:   {0, 1}
//	AP 1:   {1, 2, 3}
//	AP 2:   {0, 3}
//
//	greedy picks AP 1 (3 new rooms), then AP 0 (first of a 1-room tie):
//	chosen = [1 0], covered = {0 1 2 3}
//
// The solver never proves optimality; it carries the classical ln|U|
// approximation ratio. Unreachable rooms yield a partial cover, not an error.
//
//	go install github.com/katalvlaran/apcover/cmd/apcover@latest
package apcover
