package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/placement"
	"github.com/EricSpencer00/cubed-pack-solve/symmetry"
)

func TestRunRespectsMaxSolutions(t *testing.T) {
	var last Report
	res, err := Run(
		WithMaxSolutions(1),
		WithProgress(func(r Report) { last = r }),
	)
	require.NoError(t, err)
	require.LessOrEqual(t, len(res.Solutions), 1)
	require.Equal(t, res.Final, last)
}

func TestRunCancelledContextStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(WithContext(ctx))
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
}

func TestRunWithTutorialAttachesOrdering(t *testing.T) {
	res, err := Run(WithMaxSolutions(1), WithTutorial(true))
	require.NoError(t, err)
	if len(res.Solutions) == 0 {
		t.Skip("no solution pulled within the max-solutions budget")
	}
	require.NotNil(t, res.Solutions[0].Tutorial)
	require.Len(t, res.Solutions[0].Tutorial.Steps, symmetry.PiecesPerSolution)
}

func TestWithProgressRejectsNil(t *testing.T) {
	require.Panics(t, func() { WithProgress(nil) })
}

func TestWithContextRejectsNil(t *testing.T) {
	require.Panics(t, func() { WithContext(nil) })
}

func TestToSolutionRejectsWrongPieceCount(t *testing.T) {
	_, err := toSolution(nil, []int{0, 1, 2})
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestToSolutionRejectsOverlappingCells(t *testing.T) {
	placements := placement.MustEnumerate()
	rowIDs := make([]int, symmetry.PiecesPerSolution)
	for i := range rowIDs {
		rowIDs[i] = 0 // every piece the same placement: guaranteed overlap
	}
	_, err := toSolution(placements, rowIDs)
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestToSolutionAcceptsWellFormedRows(t *testing.T) {
	placements := placement.MustEnumerate()

	// Build a trivial, non-overlapping synthetic cover by hand: not a
	// real tiling solution, just PiecesPerSolution placements whose
	// cells happen to be disjoint, to exercise the success path.
	used := make(map[int]struct{}, cell.NumCells)
	var rowIDs []int
	for i, p := range placements {
		clash := false
		for _, id := range p {
			if _, ok := used[id]; ok {
				clash = true
				break
			}
		}
		if clash {
			continue
		}
		for _, id := range p {
			used[id] = struct{}{}
		}
		rowIDs = append(rowIDs, i)
		if len(rowIDs) == symmetry.PiecesPerSolution {
			break
		}
	}
	if len(rowIDs) != symmetry.PiecesPerSolution {
		t.Skip("greedy placement packing did not fill the lattice in this run")
	}

	sol, err := toSolution(placements, rowIDs)
	require.NoError(t, err)
	require.Len(t, sol, symmetry.PiecesPerSolution)
}

func TestRunDeliversProgressReports(t *testing.T) {
	var reports []Report
	_, err := Run(
		WithMaxSolutions(2),
		WithProgress(func(r Report) { reports = append(reports, r) }),
	)
	require.NoError(t, err)
	require.NotEmpty(t, reports)
	for _, r := range reports {
		require.GreaterOrEqual(t, r.Elapsed, time.Duration(0))
	}
}

func TestNewResultMetadataReflectsSolutionCount(t *testing.T) {
	res, err := Run(WithMaxSolutions(1))
	require.NoError(t, err)
	meta := NewResultMetadata(res, "2026-07-31T00:00:00Z")
	require.Equal(t, len(res.Solutions), meta.TotalSolutions)
	require.Equal(t, cell.Size, meta.CubeSize)
	require.Equal(t, cell.NumCells, meta.TotalCells)
	require.Equal(t, symmetry.PiecesPerSolution, meta.PiecesPerSolution)
}
