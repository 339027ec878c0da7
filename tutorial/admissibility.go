package tutorial

import (
	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
)

// minZ returns the minimum z-coordinate among a piece's cells.
func minZ(piece symmetry.Piece) int {
	m := piece[0].Z
	for _, c := range piece {
		if c.Z < m {
			m = c.Z
		}
	}
	return m
}

// minXY returns the minimum x and minimum y among a piece's cells.
func minXY(piece symmetry.Piece) (int, int) {
	mx, my := piece[0].X, piece[0].Y
	for _, c := range piece {
		if c.X < mx {
			mx = c.X
		}
		if c.Y < my {
			my = c.Y
		}
	}
	return mx, my
}

// gravitySupported reports whether piece is gravity-supported against
// placedCells (a set of already-placed cell ids): either its minimum z
// is 0, or every one of its cells at that minimum z has the cell
// directly below it already placed.
func gravitySupported(piece symmetry.Piece, placedCells map[int]struct{}) bool {
	z := minZ(piece)
	if z == 0 {
		return true
	}
	for _, c := range piece {
		if c.Z != z {
			continue
		}
		below := cell.Point{X: c.X, Y: c.Y, Z: c.Z - 1}
		if _, ok := placedCells[cell.ToIndex(below)]; !ok {
			return false
		}
	}
	return true
}

// directions are the three positive axes a candidate cell can reach
// the outside of the cube along.
var directions = [3]cell.Point{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// accessible reports whether piece has at least one cell from which a
// straight line along +x, +y, or +z reaches outside the cube without
// crossing an already-placed cell. An empty placed set trivially
// short-circuits to true (the first piece is always accessible).
func accessible(piece symmetry.Piece, placedCells map[int]struct{}) bool {
	if len(placedCells) == 0 {
		return true
	}
	for _, c := range piece {
		for _, d := range directions {
			if pathClear(c, d, placedCells) {
				return true
			}
		}
	}
	return false
}

// pathClear walks from c in direction d, one cell at a time, until it
// leaves the lattice (success) or hits a placed cell (blocked).
func pathClear(c, d cell.Point, placedCells map[int]struct{}) bool {
	cur := cell.Point{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
	for cur.InBounds() {
		if _, ok := placedCells[cell.ToIndex(cur)]; ok {
			return false
		}
		cur = cell.Point{X: cur.X + d.X, Y: cur.Y + d.Y, Z: cur.Z + d.Z}
	}
	return true
}
