package dlx

import "errors"

// ErrGraphCorrupt indicates an internal consistency check failed: a
// column reachable from the root reports a size that disagrees with
// the number of nodes reachable in it. A programming invariant — it
// can only happen if cover/uncover or construction has a bug.
var ErrGraphCorrupt = errors.New("dlx: linked matrix is internally inconsistent")

// ErrSearchAborted indicates the caller's context was cancelled while
// Next was waiting on the search; Next wraps it together with
// ctx.Err(). Stop on its own does not produce an error.
var ErrSearchAborted = errors.New("dlx: search aborted by caller")

// root is the fixed arena index of the anchor node. Column headers
// occupy indices [1, numCols]; row/cell nodes are appended afterward.
const root int32 = 0

// Matrix is the arena-backed toroidal linked structure. All fields are
// parallel slices addressed by node index; there is no pointer graph.
type Matrix struct {
	left, right, up, down []int32 // neighbour indices per node
	col                   []int32 // owning column-header index per node
	rowOf                 []int32 // row id per cell node; -1 for headers and root

	colSize []int32 // current visible-node count per column, indexed by column number (0..numCols-1)
	numCols int
	numRows int
}

// NumCols reports the number of columns (216 lattice cells).
func (m *Matrix) NumCols() int { return m.numCols }

// NumRows reports the number of rows (placements) the matrix was built from.
func (m *Matrix) NumRows() int { return m.numRows }

// headerOf returns the arena index of column c's header (c is 0-based).
func headerOf(c int) int32 { return int32(c + 1) }

// columnOf returns the 0-based column number for a header's arena index.
func columnOf(h int32) int { return int(h - 1) }
