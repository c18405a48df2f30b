// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/apcover/instance"
	"github.com/katalvlaran/apcover/setcover"
)

// DefaultTrials is the number of instances averaged per point.
const DefaultTrials = 3

// SolveFunc solves one instance. The harness times exactly this call.
type SolveFunc func(inst instance.Instance) (setcover.Result[int], error)

// GreedySolver is the default SolveFunc: setcover.Greedy on rooms and coverage.
func GreedySolver(inst instance.Instance) (setcover.Result[int], error) {
	return setcover.Greedy(inst.Rooms, inst.Coverage), nil
}

// Sample aggregates the trials of one (rooms, APs) point.
type Sample struct {
	Rooms int
	APs   int

	Trials int

	// Mean is the average solver time per trial.
	Mean time.Duration

	// MeanPicks is the average number of APs chosen.
	MeanPicks float64

	// FullCovers counts trials in which every room was covered.
	FullCovers int
}

// Harness runs timing experiments. Build it with New.
type Harness struct {
	clock  Clock
	seed   int64
	trials int
	prob   float64
	solve  SolveFunc
	log    logrus.FieldLogger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock replaces the SystemClock.
func WithClock(c Clock) Option { return func(h *Harness) { h.clock = c } }

// WithSeed sets the base seed of instance generation (0 ⇒ instance.DefaultSeed).
func WithSeed(seed int64) Option { return func(h *Harness) { h.seed = seed } }

// WithTrials sets the number of instances per point.
func WithTrials(n int) Option { return func(h *Harness) { h.trials = n } }

// WithCoverageProb sets the per-(AP, room) coverage probability.
func WithCoverageProb(p float64) Option { return func(h *Harness) { h.prob = p } }

// WithSolver replaces GreedySolver.
func WithSolver(fn SolveFunc) Option { return func(h *Harness) { h.solve = fn } }

// WithLogger routes progress lines to l. The default logger discards them.
func WithLogger(l logrus.FieldLogger) Option { return func(h *Harness) { h.log = l } }

// New builds a Harness over the defaults (SystemClock, DefaultTrials,
// instance.DefaultCoverageProb, GreedySolver, silent logger).
func New(opts ...Option) (*Harness, error) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	h := &Harness{
		clock:  SystemClock{},
		trials: DefaultTrials,
		prob:   instance.DefaultCoverageProb,
		solve:  GreedySolver,
		log:    quiet,
	}
	for _, opt := range opts {
		opt(h)
	}

	switch {
	case h.trials < 1:
		return nil, fmt.Errorf("bench: trials=%d < 1: %w", h.trials, ErrInvalidHarness)
	case math.IsNaN(h.prob) || h.prob < 0 || h.prob > 1:
		return nil, fmt.Errorf("bench: coverage probability %g not in [0,1]: %w", h.prob, ErrInvalidHarness)
	case h.clock == nil:
		return nil, fmt.Errorf("bench: nil clock: %w", ErrInvalidHarness)
	case h.solve == nil:
		return nil, fmt.Errorf("bench: nil solver: %w", ErrInvalidHarness)
	case h.log == nil:
		return nil, fmt.Errorf("bench: nil logger: %w", ErrInvalidHarness)
	}

	return h, nil
}

// Grid measures every (n, m) pair, n-major.
func (h *Harness) Grid(ctx context.Context, ns, ms []int) ([]Sample, error) {
	out := make([]Sample, 0, len(ns)*len(ms))
	for _, n := range ns {
		for _, m := range ms {
			s, err := h.measure(ctx, n, m)
			if err != nil {
				return out, err
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// VaryM fixes the room count and sweeps the AP count.
func (h *Harness) VaryM(ctx context.Context, n int, ms []int) ([]Sample, error) {
	return h.Grid(ctx, []int{n}, ms)
}

// VaryN sweeps the room count for a fixed AP count.
func (h *Harness) VaryN(ctx context.Context, ns []int, m int) ([]Sample, error) {
	return h.Grid(ctx, ns, []int{m})
}

// measure runs h.trials fresh instances of size (n, m). Each trial draws
// from its own stream derived from (seed, n, m, trial), so a point's
// instances do not depend on which other points ran before it.
func (h *Harness) measure(ctx context.Context, n, m int) (Sample, error) {
	var (
		total time.Duration
		picks int
		full  int
	)

	for t := 0; t < h.trials; t++ {
		if err := ctx.Err(); err != nil {
			return Sample{}, err
		}

		rng := instance.DeriveRand(h.seed, uint64(n), uint64(m), uint64(t))
		inst, err := instance.Random(n, m, h.prob, instance.WithRand(rng))
		if err != nil {
			return Sample{}, fmt.Errorf("bench: n=%d m=%d: %w", n, m, err)
		}

		start := h.clock.Now()
		res, err := h.solve(inst)
		elapsed := h.clock.Now().Sub(start)
		if err != nil {
			return Sample{}, fmt.Errorf("bench: solve n=%d m=%d trial=%d: %w", n, m, t, err)
		}

		total += elapsed
		picks += len(res.Chosen)
		if res.Complete(inst.Rooms) {
			full++
		}
		h.log.WithFields(logrus.Fields{
			"n": n, "m": m, "trial": t, "elapsed": elapsed, "picks": len(res.Chosen),
		}).Debug("trial done")
	}

	s := Sample{
		Rooms:      n,
		APs:        m,
		Trials:     h.trials,
		Mean:       total / time.Duration(h.trials),
		MeanPicks:  float64(picks) / float64(h.trials),
		FullCovers: full,
	}
	h.log.WithFields(logrus.Fields{
		"n":           n,
		"m":           m,
		"time":        fmt.Sprintf("%.6fs", s.Mean.Seconds()),
		"mean_picks":  s.MeanPicks,
		"full_covers": s.FullCovers,
	}).Info("timing point")

	return s, nil
}
