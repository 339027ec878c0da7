package tutorial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
)

// candidate bundles the values computed for one not-yet-placed piece
// during a single selection round.
type candidate struct {
	origIndex  int // index into the input solution, 0-based
	grounded   bool
	accessible bool
	adjCount   int
	adjPieces  []int // 1-based original piece indices
	sc         float64
	cd         float64
	mz         int
}

// Reorder resequences sol's pieces into a gravity-safe, access-safe
// assembly order and builds per-step metadata for each placement.
func Reorder(sol symmetry.Solution) (Ordered, error) {
	if len(sol) == 0 {
		return Ordered{}, ErrEmptySolution
	}

	remaining := make([]int, len(sol))
	for i := range remaining {
		remaining[i] = i
	}

	placedCells := make(map[int]struct{}, len(sol)*4)
	placedCellOwner := make(map[int]int, len(sol)*4)

	ordered := make([]symmetry.Piece, 0, len(sol))
	steps := make([]Step, 0, len(sol))

	for stepIdx := 1; len(remaining) > 0; stepIdx++ {
		chosen := selectNext(sol, remaining, placedCells, placedCellOwner)

		piece := sol[chosen.origIndex]
		tip := buildTip(stepIdx, chosen)

		steps = append(steps, Step{
			Index:          stepIdx,
			PieceIndex:     chosen.origIndex + 1,
			Cells:          [4]cell.Point(piece),
			Grounded:       chosen.grounded,
			MinZ:           chosen.mz,
			CornerDistance: round2(chosen.cd),
			AdjacentTo:     chosen.adjPieces,
			Accessible:     chosen.accessible,
			Tip:            tip,
		})
		ordered = append(ordered, piece)

		for _, c := range piece {
			id := cell.ToIndex(c)
			placedCells[id] = struct{}{}
			placedCellOwner[id] = chosen.origIndex + 1
		}
		remaining = removeValue(remaining, chosen.origIndex)
	}

	if err := verifyCoverage(sol, ordered); err != nil {
		return Ordered{}, err
	}

	return Ordered{
		TotalPieces:   len(sol),
		Statistics:    buildStatistics(ordered),
		OrderedPieces: ordered,
		Steps:         steps,
	}, nil
}

// selectNext evaluates every remaining piece and picks the admissible
// one with lowest score; if none is admissible, falls back to minimum
// min_z then minimum corner distance, both deterministically
// tie-broken by iteration (ascending original index) order.
func selectNext(sol symmetry.Solution, remaining []int, placedCells map[int]struct{}, placedCellOwner map[int]int) candidate {
	var best candidate
	haveAdmissible := false
	var fallback candidate
	haveFallback := false

	for _, idx := range remaining {
		piece := sol[idx]
		g := gravitySupported(piece, placedCells)
		acc := accessible(piece, placedCells)
		a, adjPieces := adjacency(piece, placedCellOwner)
		c := candidate{
			origIndex:  idx,
			grounded:   minZ(piece) == 0,
			accessible: acc,
			adjCount:   a,
			adjPieces:  adjPieces,
			cd:         cornerDistance(piece),
			mz:         minZ(piece),
		}
		c.sc = score(piece, a)

		if g && acc {
			if !haveAdmissible || c.sc < best.sc {
				best = c
				haveAdmissible = true
			}
		}

		if !haveFallback ||
			c.mz < fallback.mz ||
			(c.mz == fallback.mz && c.cd < fallback.cd) {
			fallback = c
			haveFallback = true
		}
	}

	if haveAdmissible {
		return best
	}
	return fallback
}

// buildTip chooses the step's tip text by an ordered set of rules:
// step 1 always wins; then grounded+near-corner; then grounded; then
// adjacency; otherwise a generic placement note.
func buildTip(stepIdx int, c candidate) string {
	switch {
	case stepIdx == 1:
		return "corner start"
	case c.grounded && c.cd < 3:
		return "expanding from corner"
	case c.grounded:
		return "ground level piece"
	case len(c.adjPieces) > 0:
		return fmt.Sprintf("layer z=%d: connects to piece(s) %s", c.mz, formatIntList(c.adjPieces))
	default:
		return fmt.Sprintf("layer z=%d: place carefully", c.mz)
	}
}

func formatIntList(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func removeValue(xs []int, v int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// verifyCoverage asserts ordered is a reordering of sol: same piece
// count, and the union of cells is identical. A programming invariant
// — Reorder must place every original piece exactly once.
func verifyCoverage(sol symmetry.Solution, ordered []symmetry.Piece) error {
	if len(ordered) != len(sol) {
		return ErrIncompleteCoverage
	}
	want := make(map[int]struct{}, len(sol)*4)
	for _, p := range sol {
		for _, c := range p {
			want[cell.ToIndex(c)] = struct{}{}
		}
	}
	got := make(map[int]struct{}, len(sol)*4)
	for _, p := range ordered {
		for _, c := range p {
			got[cell.ToIndex(c)] = struct{}{}
		}
	}
	if len(want) != len(got) {
		return ErrIncompleteCoverage
	}
	for id := range want {
		if _, ok := got[id]; !ok {
			return ErrIncompleteCoverage
		}
	}
	return nil
}
