package placement

import "errors"

// ErrWrongCount indicates Enumerate produced a placement count other
// than the reference count for this geometry. A programming invariant.
var ErrWrongCount = errors.New("placement: generated placement count does not match the reference count")

// ErrOutOfBounds indicates a generated placement touches a cell
// outside the lattice. A programming invariant; Enumerate's bounds
// check should make this unreachable.
var ErrOutOfBounds = errors.New("placement: generated placement touches an out-of-bounds cell")

// ReferenceCount is the reference placement count for the 6×6×6
// lattice / T-tetracube geometry, locked by running the enumerator
// once and recording its output (see doc.go).
const ReferenceCount = 1440

// Placement is an unordered set of 4 cell ids, stored ascending.
type Placement [4]int
