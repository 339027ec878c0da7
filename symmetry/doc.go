// Package symmetry canonicalises raw DLX solutions under the cube
// rotation group and deduplicates the resulting stream into distinct
// tilings.
//
// Rotation acts on the cube centred at (2.5,2.5,2.5): for a cell p,
// the rotated cell is round(R·(p-c)+c). Rather than compute that in
// floating point and round, Rotate works in doubled, centred
// coordinates (q = 2p - (Size-1)): every rotation matrix entry is in
// {-1,0,1}, so R·q is an exact integer permutation/sign-flip of an
// odd integer vector, and (R·q + (Size-1)) is therefore always even —
// the division back to single coordinates is exact, never a rounding
// approximation. A boot-time spot sample asserts this holds for every
// rotation against a deterministic sample of lattice points, so a bug
// in the doubled-coordinate arithmetic fails fast at boot rather than
// as a silent off-lattice rotation deep in a search.
//
// The canonical form of a solution is the lexicographic minimum, over
// all 24 rotations, of the sorted-tuple-of-sorted-pieces
// representation — CanonicalKey. UniqueSet then keeps exactly one
// representative per canonical form, in first-seen order.
package symmetry
