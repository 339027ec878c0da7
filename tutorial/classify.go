package tutorial

import "github.com/EricSpencer00/cubed-pack-solve/symmetry"

// OrientationClass classifies a piece by which single coordinate (if
// any) is constant across all 4 of its cells: constant z -> "flat",
// constant y -> "wall_xz" (piece lies in the x-z plane), constant x ->
// "wall_yz" (piece lies in the y-z plane); if none is constant, "3d".
// Checked in that order (z, then y, then x): a T-tetracube varies
// along two axes, so it has at most one constant coordinate, and the
// priority only matters as a tie-break convention for other inputs
// (a straight 4-cell bar, for example, has two).
func OrientationClass(piece symmetry.Piece) string {
	constX, constY, constZ := true, true, true
	x0, y0, z0 := piece[0].X, piece[0].Y, piece[0].Z
	for _, c := range piece[1:] {
		if c.X != x0 {
			constX = false
		}
		if c.Y != y0 {
			constY = false
		}
		if c.Z != z0 {
			constZ = false
		}
	}
	switch {
	case constZ:
		return "flat"
	case constY:
		return "wall_xz"
	case constX:
		return "wall_yz"
	default:
		return "3d"
	}
}

// buildStatistics aggregates the ordered pieces into a Statistics
// payload: piece counts per z-layer and per orientation class.
func buildStatistics(pieces []symmetry.Piece) Statistics {
	byLayer := make(map[int]int)
	var counts OrientationCounts

	for _, piece := range pieces {
		byLayer[minZ(piece)]++
		switch OrientationClass(piece) {
		case "flat":
			counts.Flat++
		case "wall_xz":
			counts.WallXZ++
		case "wall_yz":
			counts.WallYZ++
		default:
			counts.ThreeD++
		}
	}

	return Statistics{
		TotalPieces:  len(pieces),
		ByLayer:      byLayer,
		Orientations: counts,
	}
}
