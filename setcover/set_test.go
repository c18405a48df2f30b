package setcover_test

import (
	"testing"

	"github.com/katalvlaran/apcover/setcover"
	"github.com/stretchr/testify/require"
)

func TestSet_Basics(t *testing.T) {
	s := setcover.NewSet(3, 1, 2, 2)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(1))
	require.False(t, s.Contains(4))

	s.Add(4)
	require.Equal(t, []int{1, 2, 3, 4}, setcover.Sorted(s))
}

func TestSet_NilIsEmpty(t *testing.T) {
	var s setcover.Set[string]
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains("a"))
	require.True(t, s.Equal(setcover.NewSet[string]()))
	require.Equal(t, 0, s.CountNotIn(setcover.NewSet("a")))
	require.Empty(t, setcover.Sorted(s))

	c := s.Clone()
	require.NotNil(t, c)
	c.Add("a")
	require.Equal(t, 1, c.Len())
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := setcover.NewSet(1, 2)
	c := s.Clone()
	c.Add(3)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Equal(setcover.NewSet(2, 1)))
	require.False(t, s.Equal(c))
}

func TestSet_Algebra(t *testing.T) {
	a := setcover.NewSet(0, 1, 2, 3)
	b := setcover.NewSet(2, 3, 4)

	require.Equal(t, 2, a.CountNotIn(b))
	require.Equal(t, 1, b.CountNotIn(a))
	require.Equal(t, []int{2, 3}, setcover.Sorted(a.Intersect(b)))
	require.Equal(t, []int{0, 1}, setcover.Sorted(a.Difference(b)))

	// Intersect and Difference leave their operands alone.
	require.Equal(t, 4, a.Len())
	require.Equal(t, 3, b.Len())

	u := a.Clone().Union(b)
	require.Equal(t, []int{0, 1, 2, 3, 4}, setcover.Sorted(u))

	// Equal sizes but different members.
	require.False(t, setcover.NewSet(1, 2).Equal(setcover.NewSet(1, 3)))
}
