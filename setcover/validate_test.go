package setcover_test

import (
	"testing"

	"github.com/katalvlaran/apcover/setcover"
	"github.com/stretchr/testify/require"
)

// TestVerify rejects results that break the cover invariants.
func TestVerify(t *testing.T) {
	candidates := sets([]int{0, 1}, []int{1, 2, 3}, []int{0, 3})

	tests := []struct {
		name string
		res  setcover.Result[int]
		want error
	}{
		{
			name: "valid",
			res:  setcover.Result[int]{Chosen: []int{1, 0}, Covered: setcover.NewSet(0, 1, 2, 3)},
		},
		{
			name: "valid empty",
			res:  setcover.Result[int]{Chosen: []int{}, Covered: setcover.NewSet[int]()},
		},
		{
			name: "index out of range",
			res:  setcover.Result[int]{Chosen: []int{3}, Covered: setcover.NewSet[int]()},
			want: setcover.ErrIndexOutOfRange,
		},
		{
			name: "negative index",
			res:  setcover.Result[int]{Chosen: []int{-1}, Covered: setcover.NewSet[int]()},
			want: setcover.ErrIndexOutOfRange,
		},
		{
			name: "duplicate pick",
			res:  setcover.Result[int]{Chosen: []int{1, 1}, Covered: setcover.NewSet(1, 2, 3)},
			want: setcover.ErrDuplicatePick,
		},
		{
			name: "covered has an extra element",
			res:  setcover.Result[int]{Chosen: []int{0}, Covered: setcover.NewSet(0, 1, 2)},
			want: setcover.ErrCoverMismatch,
		},
		{
			name: "covered misses an element",
			res:  setcover.Result[int]{Chosen: []int{1}, Covered: setcover.NewSet(1, 2)},
			want: setcover.ErrCoverMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := setcover.Verify(candidates, tc.res)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestVerifyRestricted compares against the universe-filtered candidates.
func TestVerifyRestricted(t *testing.T) {
	universe := setcover.NewSet(0, 1)
	candidates := sets([]int{0, 1, 9})
	res := setcover.Result[int]{Chosen: []int{0}, Covered: setcover.NewSet(0, 1)}

	require.NoError(t, setcover.VerifyRestricted(universe, candidates, res))
	require.ErrorIs(t, setcover.Verify(candidates, res), setcover.ErrCoverMismatch)
}
