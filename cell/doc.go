// Package cell defines the 6×6×6 lattice addressed by the rest of the
// solver: the (x,y,z) <-> linear-id convention every other package
// builds on.
//
//	id = x + 6*y + 36*z,   0 <= x,y,z < Size
//
// The mapping is a hard external contract (placements, DLX columns,
// and canonical keys all reference cells by id), so FromIndex/ToIndex
// round-trip exactly for every id in [0, NumCells).
package cell
