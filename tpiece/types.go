package tpiece

import "errors"

// ErrWrongCount indicates orientation generation produced a set other
// than 12 distinct orientations. A programming invariant.
var ErrWrongCount = errors.New("tpiece: generated orientation set does not have 12 elements")

// ErrBadOrientation indicates a generated orientation is missing
// (0,0,0) after normalisation, or does not have exactly 4 cells.
// A programming invariant.
var ErrBadOrientation = errors.New("tpiece: generated orientation fails normalisation contract")

// NumOrientations is the number of distinct T-tetracube orientations
// under the cube rotation group.
const NumOrientations = 12

// CellsPerPiece is the number of unit cells in a T-tetracube.
const CellsPerPiece = 4

// Offset is a plain integer triple used for orientation cells before
// translation onto the lattice, so rotation/normalisation arithmetic
// never needs bounds-checked coordinates (a rotated-but-unnormalised
// point can be negative).
type Offset struct {
	X, Y, Z int
}

// Orientation is one normalised placement of the T-tetracube: exactly
// 4 cells, sorted ascending, with the minimum coordinate on every axis
// equal to zero.
type Orientation [CellsPerPiece]Offset

// Extent returns the bounding-box maximum (mx,my,mz) of the
// orientation; since it is normalised, the minimum is always zero.
func (o Orientation) Extent() (mx, my, mz int) {
	for _, c := range o {
		if c.X > mx {
			mx = c.X
		}
		if c.Y > my {
			my = c.Y
		}
		if c.Z > mz {
			mz = c.Z
		}
	}
	return mx, my, mz
}

// canonicalT is the reference T shape before any rotation is applied.
var canonicalT = [CellsPerPiece]Offset{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
}
