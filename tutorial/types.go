package tutorial

import (
	"errors"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
)

// ErrEmptySolution indicates Reorder was called with zero pieces.
var ErrEmptySolution = errors.New("tutorial: solution has no pieces")

// ErrIncompleteCoverage indicates the reordered sequence's cells do not
// exactly equal the input solution's cells (a programming invariant:
// Reorder must place every piece exactly once).
var ErrIncompleteCoverage = errors.New("tutorial: reordered pieces do not cover the same cells as the input solution")

// Step is the per-step metadata emitted for one placed piece.
type Step struct {
	Index          int           `json:"step"`
	PieceIndex     int           `json:"piece_index"`
	Cells          [4]cell.Point `json:"cells"`
	Grounded       bool          `json:"grounded"`
	MinZ           int           `json:"min_z"`
	CornerDistance float64       `json:"corner_distance"`
	AdjacentTo     []int         `json:"adjacent_to"`
	Accessible     bool          `json:"accessible"`
	Tip            string        `json:"tip"`
}

// OrientationCounts tallies pieces by their orientation class.
type OrientationCounts struct {
	Flat    int `json:"flat"`
	WallXZ  int `json:"wall_xz"`
	WallYZ  int `json:"wall_yz"`
	ThreeD  int `json:"3d"`
}

// Statistics summarises the ordered sequence for the tutorial payload:
// a piece count broken down by z-layer and by orientation class.
type Statistics struct {
	TotalPieces  int               `json:"total_pieces"`
	ByLayer      map[int]int       `json:"by_layer"`
	Orientations OrientationCounts `json:"orientations"`
}

// Ordered is the reordering result: the pieces in assembly order
// (each still the original 4-cell piece, just resequenced) and their
// per-step metadata.
type Ordered struct {
	TotalPieces   int             `json:"total_pieces"`
	Statistics    Statistics      `json:"statistics"`
	OrderedPieces []symmetry.Piece `json:"ordered_pieces"`
	Steps         []Step          `json:"steps"`
}
