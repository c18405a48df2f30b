// SPDX-License-Identifier: MIT

// Package bench times the greedy solver on random AP placement instances.
//
// A Harness owns its collaborators explicitly: a Clock for timing, a seed
// for instance generation and a logrus logger for progress lines. Nothing
// here touches process-wide state, so two harnesses never interfere.
//
// Experiments:
//
//	Grid(ctx, ns, ms)  - every (rooms, APs) pair
//	VaryM(ctx, n, ms)  - fixed rooms, growing AP count
//	VaryN(ctx, ns, m)  - growing rooms, fixed AP count
//
// For each point, Trials instances are generated outside the timed region
// and only the solver call is measured. Results come back as Samples, which
// WriteTable, WriteCSV and WriteYAML render for humans and plotting tools.
package bench
