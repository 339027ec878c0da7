// Package rotgroup generates the 24-element proper rotation group of the
// cube: every integer 3×3 matrix with determinant +1 and orthogonal
// rows/columns, built from compositions of the three elementary 90°
// axis rotations.
//
// Generation yields duplicates (the same rotation reachable by several
// products); rotgroup deduplicates by exact matrix equality and fixes
// the surviving order at construction so later packages (tpiece,
// symmetry) can rely on a stable traversal.
//
// MustGenerate performs a boot-time assertion pass: it checks the
// integer contract directly, then cross-verifies orthogonality on a
// deterministic sample using gonum/mat as an independent linear-algebra
// implementation, the way a production rewrite would not trust a single
// code path for a correctness-critical invariant.
package rotgroup
