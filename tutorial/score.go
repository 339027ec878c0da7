package tutorial

import (
	"math"
	"sort"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
)

// cornerDistance returns the minimum Euclidean distance from the
// origin to any of piece's cells.
func cornerDistance(piece symmetry.Piece) float64 {
	best := math.Inf(1)
	for _, c := range piece {
		d := math.Sqrt(float64(c.X*c.X + c.Y*c.Y + c.Z*c.Z))
		if d < best {
			best = d
		}
	}
	return best
}

// faceNeighbors returns the up to 6 axis-aligned face-adjacent
// neighbours of p.
func faceNeighbors(p cell.Point) []cell.Point {
	deltas := [6]cell.Point{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	out := make([]cell.Point, 0, 6)
	for _, d := range deltas {
		n := cell.Point{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z + d.Z}
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

// adjacency returns the total count of face-adjacencies between
// piece's cells and the union of placed cells (A in the score
// formula), and the sorted, de-duplicated list of previously-placed
// piece indices (1-based) contributing to it.
func adjacency(piece symmetry.Piece, placedCellOwner map[int]int) (count int, pieceIndices []int) {
	seen := make(map[int]struct{})
	for _, c := range piece {
		for _, n := range faceNeighbors(c) {
			ownerIdx, ok := placedCellOwner[cell.ToIndex(n)]
			if !ok {
				continue
			}
			count++
			seen[ownerIdx] = struct{}{}
		}
	}
	pieceIndices = make([]int, 0, len(seen))
	for idx := range seen {
		pieceIndices = append(pieceIndices, idx)
	}
	sort.Ints(pieceIndices)
	return count, pieceIndices
}

// score computes the selection scalar used to rank admissible
// candidates:
//
//	score = 1000*min_z + 10*d_corner - 5*A + (min_x + min_y)
//
// Layer dominates (lower z always sorts first), then proximity to the
// starting corner, then a bonus for pieces that lock against more of
// what's already placed, with a small tie-break nudging toward the
// origin corner. Lower is better.
func score(piece symmetry.Piece, a int) float64 {
	mx, my := minXY(piece)
	return 1000*float64(minZ(piece)) + 10*cornerDistance(piece) - 5*float64(a) + float64(mx+my)
}
