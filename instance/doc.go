// SPDX-License-Identifier: MIT

// Package instance produces access-point placement instances for the
// setcover solver: random Bernoulli instances for experiments and a YAML
// file format for hand-written or saved ones.
//
// Model:
//
//	Rooms are the integers 0..n-1. AP j covers room i independently with
//	probability p, so the expected coverage of one AP is p·n rooms.
//	Trials run AP-major (j asc, then i asc), so a fixed seed always yields
//	the same instance.
//
// Determinism:
//   - No option ⇒ a fixed default seed, never a time-based source.
//   - WithSeed / WithRand pick the stream explicitly.
//   - DeriveRand addresses an independent stream by (seed, keys...).
//
// File format (YAML):
//
//	rooms: [0, 1, 2, 3]
//	access_points: [[0, 1], [1, 2, 3], [0, 3]]
//	costs: [1, 2.5, 1]      # optional, one per AP
package instance
