package solver

import (
	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
	"github.com/EricSpencer00/cubed-pack-solve/tpiece"
	"github.com/EricSpencer00/cubed-pack-solve/tutorial"
)

// SolutionPayload is the external, JSON-serialisable shape of one
// canonically-distinct tiling. Index is 1-based, matching
// TutorialPayload.Steps[i].PieceIndex's convention.
type SolutionPayload struct {
	Index    int                                 `json:"index"`
	Pieces   [][tpiece.CellsPerPiece]cell.Point  `json:"pieces"`
	Tutorial *TutorialPayload                    `json:"tutorial,omitempty"`
}

// TutorialPayload mirrors tutorial.Ordered for external consumption;
// kept as a distinct type (rather than a type alias) so solver's wire
// contract does not change if tutorial's internal shape does.
type TutorialPayload struct {
	TotalPieces   int                 `json:"total_pieces"`
	Statistics    tutorial.Statistics `json:"statistics"`
	OrderedPieces []symmetry.Piece    `json:"ordered_pieces"`
	Steps         []tutorial.Step     `json:"steps"`
}

// ResultMetadata is the descriptive envelope wrapped around a run's
// solutions for external consumers, modelled on the metadata block
// original_source/solver/export.py attaches alongside its solutions
// array. GeneratedAt is supplied by the caller (cmd/cubesolve stamps
// it with time.Now) since solver itself never reads the wall clock
// for anything but Report.Elapsed.
type ResultMetadata struct {
	Problem           string `json:"problem"`
	CubeSize          int    `json:"cube_size"`
	TotalCells        int    `json:"total_cells"`
	PiecesPerSolution int    `json:"pieces_per_solution"`
	PieceType         string `json:"piece_type"`
	CellsPerPiece     int    `json:"cells_per_piece"`
	SymmetryGroup     string `json:"symmetry_group"`
	TotalSolutions    int    `json:"total_solutions"`
	GeneratedAt       string `json:"generated_at"`
}

// NewResultMetadata builds the metadata envelope for a completed
// Result. generatedAt is an RFC 3339 timestamp supplied by the caller.
func NewResultMetadata(res *Result, generatedAt string) ResultMetadata {
	return ResultMetadata{
		Problem:           "t-tetracube-cube-tiling",
		CubeSize:          cell.Size,
		TotalCells:        cell.NumCells,
		PiecesPerSolution: symmetry.PiecesPerSolution,
		PieceType:         "T-tetracube",
		CellsPerPiece:     tpiece.CellsPerPiece,
		SymmetryGroup:     "cube rotation group (order 24)",
		TotalSolutions:    len(res.Solutions),
		GeneratedAt:       generatedAt,
	}
}
