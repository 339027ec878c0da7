// Package placement enumerates every legal T-tetracube placement on the
// 6×6×6 lattice: for each of the 12 tpiece.Orientation values, every
// in-bounds translation, converted to an ascending 4-tuple of cell ids.
//
// The reference placement count for this geometry is 1440 (12
// orientations sliding across the 6×6×6 lattice), matching the count
// recorded by the original Python implementation this solver was
// reworked from. MustEnumerate asserts Enumerate's output against that
// reference so a geometry regression is caught at construction time
// rather than silently changing the DLX row space.
package placement
