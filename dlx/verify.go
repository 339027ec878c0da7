package dlx

// VerifyConsistent walks the header ring and, for every header still
// reachable from root, recounts its visible nodes and compares against
// colSize. It returns ErrGraphCorrupt on the first mismatch. Intended
// for tests and boot-time sanity checks, not the search hot path.
func (m *Matrix) VerifyConsistent() error {
	for h := m.right[root]; h != root; h = m.right[h] {
		count := int32(0)
		for n := m.down[h]; n != h; n = m.down[n] {
			count++
		}
		if count != m.colSize[columnOf(h)] {
			return ErrGraphCorrupt
		}
	}
	return nil
}
