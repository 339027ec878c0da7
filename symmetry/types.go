package symmetry

import (
	"errors"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
)

// ErrRotationNotExact indicates a rotation of a lattice cell did not
// land on an exact lattice point (the doubled-coordinate parity
// argument in doc.go failed). A programming invariant: it can only
// happen if rotgroup produced a non-cube-symmetry matrix.
var ErrRotationNotExact = errors.New("symmetry: rotated cell is not an exact lattice point")

// ErrRotationOutOfBounds indicates a rotation sent an in-bounds cell
// outside [0,Size) on some axis. A programming invariant.
var ErrRotationOutOfBounds = errors.New("symmetry: rotated cell fell outside the lattice")

// PiecesPerSolution is the number of T-tetracubes in a complete tiling
// (cell.NumCells / 4).
const PiecesPerSolution = cell.NumCells / 4

// Piece is one T-tetracube's 4 cells.
type Piece [4]cell.Point

// Solution is a complete tiling: PiecesPerSolution pieces.
type Solution []Piece
