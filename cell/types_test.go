package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToIndexFromIndexRoundTrip(t *testing.T) {
	for id := 0; id < NumCells; id++ {
		p := FromIndex(id)
		require.True(t, p.InBounds(), "FromIndex(%d) produced out-of-bounds point %+v", id, p)
		require.Equal(t, id, ToIndex(p), "round-trip mismatch for id=%d", id)
	}
}

func TestFromIndexKnownPoint(t *testing.T) {
	// id = 157 -> (1,2,4): 157 = 1 + 6*2 + 36*4
	p := FromIndex(157)
	require.Equal(t, Point{X: 1, Y: 2, Z: 4}, p)
	require.Equal(t, 157, ToIndex(p))
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0, 0}, true},
		{"max corner", Point{5, 5, 5}, true},
		{"negative x", Point{-1, 0, 0}, false},
		{"x too large", Point{6, 0, 0}, false},
		{"y too large", Point{0, 6, 0}, false},
		{"z negative", Point{0, 0, -1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.p.InBounds())
		})
	}
}
