package dlx

// search runs Algorithm X to completion, invoking emit with a copy of
// the current partial solution (row ids) at every leaf. emit returns
// false to request early termination; search then unwinds the
// recursion (restoring the matrix via uncover at every frame) and
// returns false itself, so the caller at every depth knows to stop
// without finishing its own loop.
func (m *Matrix) search(partial []int32, emit func([]int32) bool) bool {
	if m.right[root] == root {
		sol := make([]int32, len(partial))
		copy(sol, partial)
		return emit(sol)
	}

	c := m.chooseColumn()
	if m.colSize[columnOf(c)] == 0 {
		return true // dead end: continue searching other branches
	}

	m.cover(c)
	for r := m.down[c]; r != c; r = m.down[r] {
		partial = append(partial, m.rowOf[r])
		for j := m.right[r]; j != r; j = m.right[j] {
			m.cover(m.col[j])
		}

		cont := m.search(partial, emit)

		for j := m.left[r]; j != r; j = m.left[j] {
			m.uncover(m.col[j])
		}
		partial = partial[:len(partial)-1]

		if !cont {
			m.uncover(c)
			return false
		}
	}
	m.uncover(c)
	return true
}
