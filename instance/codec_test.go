package instance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/apcover/instance"
	"github.com/katalvlaran/apcover/setcover"
	"github.com/stretchr/testify/require"
)

const fourRooms = `rooms: [0, 1, 2, 3]
access_points: [[0, 1], [1, 2, 3], [0, 3]]
`

func TestDecode_FourRooms(t *testing.T) {
	inst, err := instance.Decode(strings.NewReader(fourRooms))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, setcover.Sorted(inst.Rooms))
	require.Len(t, inst.Coverage, 3)
	require.False(t, inst.Weighted())

	res := setcover.Greedy(inst.Rooms, inst.Coverage)
	require.Equal(t, []int{1, 0}, res.Chosen)
}

func TestEncode_SortedAndStable(t *testing.T) {
	inst := instance.Instance{
		Rooms:    setcover.NewSet(3, 1, 0, 2),
		Coverage: []setcover.Set[int]{setcover.NewSet(1, 0), setcover.NewSet(3, 2, 1), setcover.NewSet(3, 0)},
		Costs:    []float64{1, 2.5, 1},
	}

	var buf, again bytes.Buffer
	require.NoError(t, instance.Encode(&buf, inst))
	require.NoError(t, instance.Encode(&again, inst))
	require.Contains(t, buf.String(), "rooms: [0, 1, 2, 3]")
	require.Equal(t, buf.String(), again.String())

	back, err := instance.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, inst, back)
}

func TestEncode_RejectsCostMismatch(t *testing.T) {
	inst := instance.Instance{
		Rooms:    setcover.NewSet(0),
		Coverage: []setcover.Set[int]{setcover.NewSet(0)},
		Costs:    []float64{1, 2},
	}
	require.ErrorIs(t, instance.Encode(&bytes.Buffer{}, inst), instance.ErrMalformedInstance)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"not yaml", "rooms: [0, 1"},
		{"unknown key", "rooms: [0]\nwalls: 3\n"},
		{"wrong type", "rooms: lobby\n"},
		{"cost count mismatch", "rooms: [0]\naccess_points: [[0], [0]]\ncosts: [1]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, instance.ErrMalformedInstance)
		})
	}
}
