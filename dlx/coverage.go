package dlx

// cover removes column header h from the header ring, then, for every
// row currently in h (top to bottom), unlinks every other node in that
// row from its own column (left to right), decrementing column sizes.
func (m *Matrix) cover(h int32) {
	m.right[m.left[h]] = m.right[h]
	m.left[m.right[h]] = m.left[h]

	for i := m.down[h]; i != h; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.up[m.down[j]] = m.up[j]
			m.down[m.up[j]] = m.down[j]
			m.colSize[columnOf(m.col[j])]--
		}
	}
}

// uncover is the strict reverse of cover: rows bottom to top, within a
// row the opposite (right to left) direction, re-splicing nodes into
// their columns before finally re-splicing h into the header ring.
func (m *Matrix) uncover(h int32) {
	for i := m.up[h]; i != h; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.colSize[columnOf(m.col[j])]++
			m.up[m.down[j]] = j
			m.down[m.up[j]] = j
		}
	}

	m.right[m.left[h]] = h
	m.left[m.right[h]] = h
}

// chooseColumn selects the visible column header with minimum size
// (the S-heuristic), ties broken by first-found header-ring order.
// Callers must only invoke this when the header ring is non-empty.
func (m *Matrix) chooseColumn() int32 {
	best := m.right[root]
	bestSize := m.colSize[columnOf(best)]
	for h := m.right[best]; h != root; h = m.right[h] {
		if size := m.colSize[columnOf(h)]; size < bestSize {
			best = h
			bestSize = size
		}
	}
	return best
}

// Snapshot returns a deep copy of the matrix's mutable linkage, for
// reversibility tests: compare two snapshots with require.Equal to
// confirm a cover/uncover pair left the graph bit-identical.
func (m *Matrix) Snapshot() Matrix {
	clone := func(s []int32) []int32 {
		out := make([]int32, len(s))
		copy(out, s)
		return out
	}
	return Matrix{
		left:    clone(m.left),
		right:   clone(m.right),
		up:      clone(m.up),
		down:    clone(m.down),
		col:     clone(m.col),
		rowOf:   clone(m.rowOf),
		colSize: clone(m.colSize),
		numCols: m.numCols,
		numRows: m.numRows,
	}
}
