package instance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/apcover/instance"
	"github.com/katalvlaran/apcover/setcover"
	"github.com/stretchr/testify/require"
)

// TestRandom_Shape checks rooms, AP count and coverage bounds.
func TestRandom_Shape(t *testing.T) {
	inst, err := instance.Random(50, 20, instance.DefaultCoverageProb, instance.WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, 50, inst.Rooms.Len())
	for i := 0; i < 50; i++ {
		require.True(t, inst.Rooms.Contains(i))
	}
	require.Len(t, inst.Coverage, 20)
	for _, c := range inst.Coverage {
		// Every covered room is a real room.
		require.Zero(t, c.CountNotIn(inst.Rooms))
	}
	require.False(t, inst.Weighted())
}

// TestRandom_Deterministic: same seed, same instance; different seed, different instance.
func TestRandom_Deterministic(t *testing.T) {
	a, err := instance.Random(40, 30, 0.3, instance.WithSeed(99))
	require.NoError(t, err)
	b, err := instance.Random(40, 30, 0.3, instance.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := instance.Random(40, 30, 0.3, instance.WithSeed(100))
	require.NoError(t, err)
	require.NotEqual(t, a.Coverage, c.Coverage)

	// No option and seed 0 both use DefaultSeed.
	d, err := instance.Random(40, 30, 0.3)
	require.NoError(t, err)
	e, err := instance.Random(40, 30, 0.3, instance.WithSeed(0))
	require.NoError(t, err)
	f, err := instance.Random(40, 30, 0.3, instance.WithSeed(instance.DefaultSeed))
	require.NoError(t, err)
	require.Equal(t, d, e)
	require.Equal(t, d, f)
}

// TestRandom_ProbabilityExtremes: p=0 covers nothing, p=1 covers everything.
func TestRandom_ProbabilityExtremes(t *testing.T) {
	none, err := instance.Random(10, 5, 0)
	require.NoError(t, err)
	for _, c := range none.Coverage {
		require.Zero(t, c.Len())
	}
	res := setcover.Greedy(none.Rooms, none.Coverage)
	require.Empty(t, res.Chosen)

	all, err := instance.Random(10, 5, 1)
	require.NoError(t, err)
	for _, c := range all.Coverage {
		require.True(t, c.Equal(all.Rooms))
	}
	res = setcover.Greedy(all.Rooms, all.Coverage)
	require.Equal(t, []int{0}, res.Chosen)
}

// TestRandom_EmptySizes accepts zero rooms or zero APs.
func TestRandom_EmptySizes(t *testing.T) {
	inst, err := instance.Random(0, 3, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, inst.Rooms.Len())
	require.Len(t, inst.Coverage, 3)

	inst, err = instance.Random(4, 0, 0.5)
	require.NoError(t, err)
	require.Empty(t, inst.Coverage)
}

// TestRandom_Errors covers parameter validation.
func TestRandom_Errors(t *testing.T) {
	tests := []struct {
		name string
		n, m int
		p    float64
		want error
	}{
		{"negative rooms", -1, 3, 0.2, instance.ErrBadSize},
		{"negative APs", 3, -1, 0.2, instance.ErrBadSize},
		{"p below 0", 3, 3, -0.1, instance.ErrInvalidProbability},
		{"p above 1", 3, 3, 1.5, instance.ErrInvalidProbability},
		{"p NaN", 3, 3, math.NaN(), instance.ErrInvalidProbability},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Random(tc.n, tc.m, tc.p)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandom_Costs draws costs in range without disturbing coverage.
func TestRandom_Costs(t *testing.T) {
	plain, err := instance.Random(30, 12, 0.25, instance.WithSeed(5))
	require.NoError(t, err)
	priced, err := instance.Random(30, 12, 0.25, instance.WithSeed(5), instance.WithCostRange(2, 4))
	require.NoError(t, err)

	require.Equal(t, plain.Coverage, priced.Coverage)
	require.True(t, priced.Weighted())
	require.Len(t, priced.Costs, 12)
	for _, c := range priced.Costs {
		require.GreaterOrEqual(t, c, 2.0)
		require.Less(t, c, 4.0)
	}

	// Degenerate range gives constant costs.
	fixed, err := instance.Random(3, 4, 0.5, instance.WithCostRange(1, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1}, fixed.Costs)
}

// TestOptions_Panics: option constructors reject nonsense eagerly.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { instance.WithRand(nil) })
	require.Panics(t, func() { instance.WithCostRange(0, 1) })
	require.Panics(t, func() { instance.WithCostRange(2, 1) })
	require.Panics(t, func() { instance.WithCostRange(1, math.Inf(1)) })
	require.Panics(t, func() { instance.WithCostRange(math.NaN(), math.NaN()) })
	require.NotPanics(t, func() { instance.WithRand(rand.New(rand.NewSource(1))) })
}

// TestCheckCostRange rejects bounds that WithCostRange would panic on.
func TestCheckCostRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		ok     bool
	}{
		{"proper range", 1, 2, true},
		{"degenerate range", 3, 3, true},
		{"zero lower bound", 0, 1, false},
		{"negative lower bound", -1, 1, false},
		{"inverted", 2, 1, false},
		{"infinite upper bound", 1, math.Inf(1), false},
		{"infinite lower bound", math.Inf(-1), 1, false},
		{"NaN bounds", math.NaN(), math.NaN(), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := instance.CheckCostRange(tc.lo, tc.hi)
			if tc.ok {
				require.NoError(t, err)
				require.NotPanics(t, func() { instance.WithCostRange(tc.lo, tc.hi) })
				return
			}
			require.ErrorIs(t, err, instance.ErrInvalidCostRange)
			require.Panics(t, func() { instance.WithCostRange(tc.lo, tc.hi) })
		})
	}
}

// TestWithRand consumes the caller's stream.
func TestWithRand(t *testing.T) {
	a, err := instance.Random(20, 10, 0.4, instance.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	b, err := instance.Random(20, 10, 0.4, instance.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestDeriveRand addresses reproducible, distinct streams.
func TestDeriveRand(t *testing.T) {
	first := func(seed int64, keys ...uint64) int64 {
		return instance.DeriveRand(seed, keys...).Int63()
	}

	require.Equal(t, first(11, 1), first(11, 1))
	require.NotEqual(t, first(11, 1), first(11, 2))
	require.NotEqual(t, first(11, 1), first(12, 1))

	// seed 0 falls back to DefaultSeed.
	require.Equal(t, first(0, 4), first(instance.DefaultSeed, 4))

	// Key order matters and no key is a no-op.
	require.NotEqual(t, first(11, 1, 2), first(11, 2, 1))
	require.NotEqual(t, first(11), first(11, 0))
	require.NotEqual(t, first(11, 0), first(11, 0, 0))

	// Wide keys stay distinct.
	require.NotEqual(t, first(11, 0, 1<<20, 0), first(11, 1, 0, 0))
	require.NotEqual(t, first(11, 0, 0, 1<<20), first(11, 0, 1, 0))
	require.NotEqual(t, first(11, 1<<63, 0, 0), first(11, 0, 0, 0))
}
