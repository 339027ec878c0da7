package rotgroup

// rx, ry, rz are the elementary 90° right-hand rotations about the x, y,
// and z axes respectively. Every element of the 24-element group is a
// product of these three generators.
var (
	rx = Matrix{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	ry = Matrix{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	rz = Matrix{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
)

// power returns m raised to the given non-negative exponent.
func power(m Matrix, exp int) Matrix {
	out := identity
	for i := 0; i < exp; i++ {
		out = Mul(out, m)
	}
	return out
}

// Generate builds all distinct elements of the cube's proper rotation
// group as products Rx^i * Ry^j * Rz^k for i,j,k in {0,1,2,3},
// deduplicated by matrix equality. Order is deterministic across runs
// (nested loop order i, j, k) but otherwise implementation-defined.
func Generate() []Matrix {
	seen := make(map[Matrix]struct{}, NumRotations)
	result := make([]Matrix, 0, NumRotations)

	for i := 0; i < 4; i++ {
		rxi := power(rx, i)
		for j := 0; j < 4; j++ {
			ryj := power(ry, j)
			for k := 0; k < 4; k++ {
				rzk := power(rz, k)
				m := Mul(Mul(rxi, ryj), rzk)
				if _, dup := seen[m]; dup {
					continue
				}
				seen[m] = struct{}{}
				result = append(result, m)
			}
		}
	}
	return result
}

// MustGenerate calls Generate, asserts the 24-element contract (count,
// determinant, orthogonality), cross-verifies a deterministic sample
// with gonum/mat, and panics on any violation. This is the boot-time
// assertion spec'd for the rotation group: failure here indicates a
// bug in Generate, not a runtime condition a caller can recover from.
func MustGenerate() []Matrix {
	rots := Generate()
	if len(rots) != NumRotations {
		panic(ErrWrongCount)
	}
	for _, m := range rots {
		if m.Det() != 1 || !m.isOrthogonal() {
			panic(ErrNotOrthogonal)
		}
	}
	if err := verifyWithGonum(rots); err != nil {
		panic(err)
	}
	return rots
}
