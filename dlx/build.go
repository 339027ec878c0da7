package dlx

// NewMatrix builds the toroidal linked matrix for numCols columns and
// the given rows (each row is the ascending list of column indices it
// covers). Column headers are threaded into a ring off root in
// ascending column order; each row's cell nodes form a circular ring
// in the row's given order and are spliced at the bottom of their
// column.
//
// Rows need not all have the same length (Knuth's canonical test
// instance does not); the solver package's placements always supply
// exactly 4 columns per row.
func NewMatrix(numCols int, rows [][]int) *Matrix {
	totalCells := 0
	for _, r := range rows {
		totalCells += len(r)
	}
	numNodes := 1 + numCols + totalCells

	m := &Matrix{
		left:    make([]int32, numNodes),
		right:   make([]int32, numNodes),
		up:      make([]int32, numNodes),
		down:    make([]int32, numNodes),
		col:     make([]int32, numNodes),
		rowOf:   make([]int32, numNodes),
		colSize: make([]int32, numCols),
		numCols: numCols,
		numRows: len(rows),
	}

	// Header ring: root, then headers 1..numCols, circular.
	m.rowOf[root] = -1
	prev := root
	for c := 0; c < numCols; c++ {
		h := headerOf(c)
		m.left[h] = prev
		m.right[prev] = h
		m.up[h] = h
		m.down[h] = h
		m.col[h] = h
		m.rowOf[h] = -1
		prev = h
	}
	m.right[prev] = root
	m.left[root] = prev

	// Row nodes, appended after the headers.
	next := int32(1 + numCols)
	for rowID, p := range rows {
		first := next
		nodes := make([]int32, len(p))
		for i, cellID := range p {
			n := next
			next++
			nodes[i] = n
			h := headerOf(cellID)
			m.col[n] = h
			m.rowOf[n] = int32(rowID)

			// Splice into the row ring (circular, ascending cell-id order).
			if i == 0 {
				m.left[n] = n
				m.right[n] = n
			} else {
				last := nodes[i-1]
				m.left[n] = last
				m.right[n] = first
				m.right[last] = n
				m.left[first] = n
			}

			// Splice at the bottom of column h.
			last := m.up[h]
			m.down[last] = n
			m.up[n] = last
			m.down[n] = h
			m.up[h] = n
			m.colSize[cellID]++
		}
	}

	return m
}
