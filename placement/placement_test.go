package placement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/tpiece"
)

func TestEnumerateMatchesReferenceCount(t *testing.T) {
	placements := Enumerate(tpiece.MustOrientations())
	require.Len(t, placements, ReferenceCount)
}

func TestEveryPlacementIsStrictlyAscendingAndInBounds(t *testing.T) {
	for _, p := range Enumerate(tpiece.MustOrientations()) {
		for i := 0; i < 4; i++ {
			require.GreaterOrEqual(t, p[i], 0)
			require.Less(t, p[i], cell.NumCells)
		}
		for i := 1; i < 4; i++ {
			require.Less(t, p[i-1], p[i], "placement %v is not strictly ascending", p)
		}
	}
}

func TestNoDuplicatePlacements(t *testing.T) {
	placements := Enumerate(tpiece.MustOrientations())
	seen := make(map[Placement]struct{}, len(placements))
	for _, p := range placements {
		_, dup := seen[p]
		require.False(t, dup, "duplicate placement %v", p)
		seen[p] = struct{}{}
	}
}

func TestMustEnumerateDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		require.Len(t, MustEnumerate(), ReferenceCount)
	})
}

func TestEnumerateDeterministicOrder(t *testing.T) {
	orientations := tpiece.MustOrientations()
	a := Enumerate(orientations)
	b := Enumerate(orientations)
	require.Equal(t, a, b)
}
