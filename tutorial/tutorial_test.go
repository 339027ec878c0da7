package tutorial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
	"github.com/EricSpencer00/cubed-pack-solve/tpiece"
)

// floorTwoLayerSolution builds a tiny synthetic "solution" (not a real
// T-tetracube tiling, just three groups of 4 cells) that stacks a
// ground layer and a layer above it supported everywhere, enough to
// exercise gravity/access/ordering without needing a full 54-piece
// solve.
func floorTwoLayerSolution() symmetry.Solution {
	return symmetry.Solution{
		{ // ground piece A, z=0
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
		},
		{ // ground piece B, z=0, far corner
			{X: 4, Y: 4, Z: 0}, {X: 5, Y: 4, Z: 0}, {X: 4, Y: 5, Z: 0}, {X: 5, Y: 5, Z: 0},
		},
		{ // upper piece, directly above piece A, z=1
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		},
	}
}

func TestReorderPlacesAllPiecesExactlyOnce(t *testing.T) {
	sol := floorTwoLayerSolution()
	ordered, err := Reorder(sol)
	require.NoError(t, err)
	require.Len(t, ordered.Steps, len(sol))
	require.Len(t, ordered.OrderedPieces, len(sol))
}

func TestReorderRejectsEmptySolution(t *testing.T) {
	_, err := Reorder(symmetry.Solution{})
	require.ErrorIs(t, err, ErrEmptySolution)
}

func TestReorderOnlyPlacesGravitySupportedPieces(t *testing.T) {
	sol := floorTwoLayerSolution()
	ordered, err := Reorder(sol)
	require.NoError(t, err)

	placed := make(map[int]struct{})
	for _, step := range ordered.Steps {
		for _, c := range step.Cells {
			if c.Z == 0 {
				continue
			}
			below := cell.Point{X: c.X, Y: c.Y, Z: c.Z - 1}
			_, ok := placed[cell.ToIndex(below)]
			require.True(t, ok || step.MinZ == 0,
				"step %d placed cell %+v without support below", step.Index, c)
		}
		for _, c := range step.Cells {
			placed[cell.ToIndex(c)] = struct{}{}
		}
	}
}

func TestReorderFirstStepHasCornerStartTip(t *testing.T) {
	sol := floorTwoLayerSolution()
	ordered, err := Reorder(sol)
	require.NoError(t, err)
	require.Equal(t, "corner start", ordered.Steps[0].Tip)
}

func TestOrientationClassification(t *testing.T) {
	flat := symmetry.Piece{
		{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2},
	}
	require.Equal(t, "flat", OrientationClass(flat))

	wallXZ := symmetry.Piece{
		{X: 0, Y: 3, Z: 0}, {X: 1, Y: 3, Z: 0}, {X: 2, Y: 3, Z: 0}, {X: 1, Y: 3, Z: 1},
	}
	require.Equal(t, "wall_xz", OrientationClass(wallXZ))

	wallYZ := symmetry.Piece{
		{X: 2, Y: 0, Z: 0}, {X: 2, Y: 1, Z: 0}, {X: 2, Y: 2, Z: 0}, {X: 2, Y: 1, Z: 1},
	}
	require.Equal(t, "wall_yz", OrientationClass(wallYZ))

	threeD := symmetry.Piece{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1},
	}
	require.Equal(t, "3d", OrientationClass(threeD))
}

// TestOrientationClassificationOverAllCanonicalOrientations freezes the
// mapping against the real 12 T-tetracube orientations rather than
// hand-built pieces: every canonical orientation is a bar of 3 cells
// along one axis plus a stem cell along a second axis, so it always
// varies in exactly two of the three coordinates. No canonical
// orientation should ever classify as "3d"; they split evenly, 4 to a
// class, across flat/wall_xz/wall_yz.
func TestOrientationClassificationOverAllCanonicalOrientations(t *testing.T) {
	counts := map[string]int{}
	for _, o := range tpiece.MustOrientations() {
		piece := symmetry.Piece{
			{X: o[0].X, Y: o[0].Y, Z: o[0].Z},
			{X: o[1].X, Y: o[1].Y, Z: o[1].Z},
			{X: o[2].X, Y: o[2].Y, Z: o[2].Z},
			{X: o[3].X, Y: o[3].Y, Z: o[3].Z},
		}
		class := OrientationClass(piece)
		require.NotEqual(t, "3d", class, "canonical orientation %+v classified as 3d", o)
		counts[class]++
	}
	require.Equal(t, tpiece.NumOrientations, counts["flat"]+counts["wall_xz"]+counts["wall_yz"])
	require.Equal(t, 4, counts["flat"])
	require.Equal(t, 4, counts["wall_xz"])
	require.Equal(t, 4, counts["wall_yz"])
}

func TestGravitySupportedGroundAlwaysTrue(t *testing.T) {
	ground := symmetry.Piece{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	}
	require.True(t, gravitySupported(ground, map[int]struct{}{}))
}

func TestAccessibleTrueWhenNothingPlaced(t *testing.T) {
	piece := symmetry.Piece{
		{X: 2, Y: 2, Z: 2}, {X: 2, Y: 2, Z: 3}, {X: 2, Y: 3, Z: 2}, {X: 3, Y: 2, Z: 2},
	}
	require.True(t, accessible(piece, map[int]struct{}{}))
}
