package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/dlx"
	"github.com/EricSpencer00/cubed-pack-solve/placement"
	"github.com/EricSpencer00/cubed-pack-solve/rotgroup"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
	"github.com/EricSpencer00/cubed-pack-solve/tpiece"
	"github.com/EricSpencer00/cubed-pack-solve/tutorial"
)

// Result is the outcome of a Run call: every distinct tiling found (up
// to cube-rotational symmetry), plus the tallies that ended up in the
// final Report.
type Result struct {
	Solutions []SolutionPayload
	Final     Report
}

// Run enumerates placements, feeds them through the DLX exact-cover
// search, and keeps only the canonically-distinct solutions. It owns
// the whole placement->dlx->symmetry pipeline; callers never touch
// those packages directly.
func Run(opts ...Option) (*Result, error) {
	c := resolveOptions(opts)

	start := time.Now()
	rots := rotgroup.MustGenerate()
	symmetry.AssertRotationsPreserveLattice(rots)

	placements := placement.MustEnumerate()
	rows := make([][]int, len(placements))
	for i, p := range placements {
		rows[i] = []int{p[0], p[1], p[2], p[3]}
	}

	matrix := dlx.NewMatrix(cell.NumCells, rows)
	iter := dlx.NewSolutions(matrix)
	defer iter.Stop()

	unique := symmetry.NewUniqueSet(rots)
	result := &Result{}

	report := Report{}
	emitProgress := func() {
		report.Elapsed = time.Since(start)
		c.progress(report)
	}

	for {
		if c.maxSolutions > 0 && unique.Len() >= c.maxSolutions {
			break
		}

		raw, ok, err := iter.Next(c.ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			break
		}
		report.Pulled++

		sol, err := toSolution(placements, raw)
		if err != nil {
			return result, err
		}
		report.Accepted++

		if unique.Add(sol) {
			report.Unique++
			payload, err := buildPayload(sol, unique.Len(), c.withTutorial)
			if err != nil {
				return result, err
			}
			result.Solutions = append(result.Solutions, payload)
		}

		emitProgress()
	}

	result.Final = report
	return result, nil
}

// toSolution converts a raw DLX row-id solution into a symmetry.Solution
// and verifies it structurally: exactly PiecesPerSolution pieces,
// every cell in bounds, no cell used twice, 216 cells covered in total.
func toSolution(placements []placement.Placement, rowIDs []int) (symmetry.Solution, error) {
	if len(rowIDs) != symmetry.PiecesPerSolution {
		return nil, fmt.Errorf("%w: %d pieces, want %d", ErrVerificationFailed, len(rowIDs), symmetry.PiecesPerSolution)
	}

	seen := make(map[int]struct{}, cell.NumCells)
	sol := make(symmetry.Solution, len(rowIDs))
	for i, rowID := range rowIDs {
		p := placements[rowID]
		var piece symmetry.Piece
		for j, id := range p {
			pt := cell.FromIndex(id)
			if !pt.InBounds() {
				return nil, fmt.Errorf("%w: cell %d out of bounds", ErrVerificationFailed, id)
			}
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: cell %d used twice", ErrVerificationFailed, id)
			}
			seen[id] = struct{}{}
			piece[j] = pt
		}
		sol[i] = piece
	}
	if len(seen) != cell.NumCells {
		return nil, fmt.Errorf("%w: %d cells covered, want %d", ErrVerificationFailed, len(seen), cell.NumCells)
	}
	return sol, nil
}

// buildPayload assembles the host-facing SolutionPayload for one
// accepted, newly-unique solution, optionally attaching a tutorial
// ordering. tpiece.CellsPerPiece keeps the "4 cells" figure grounded
// in the same constant the rest of the pipeline uses.
func buildPayload(sol symmetry.Solution, index int, withTutorial bool) (SolutionPayload, error) {
	payload := SolutionPayload{
		Index:  index,
		Pieces: make([][tpiece.CellsPerPiece]cell.Point, len(sol)),
	}
	for i, piece := range sol {
		payload.Pieces[i] = [tpiece.CellsPerPiece]cell.Point(piece)
	}

	if withTutorial {
		ordered, err := tutorial.Reorder(sol)
		if err != nil {
			return SolutionPayload{}, err
		}
		payload.Tutorial = &TutorialPayload{
			TotalPieces:   ordered.TotalPieces,
			Statistics:    ordered.Statistics,
			OrderedPieces: ordered.OrderedPieces,
			Steps:         ordered.Steps,
		}
	}
	return payload, nil
}
