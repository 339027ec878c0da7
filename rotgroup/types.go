package rotgroup

import "errors"

// ErrWrongCount indicates the generator produced a group of size other
// than 24 after deduplication. This is a programming invariant, not a
// recoverable condition: it can only happen if the generation logic is
// wrong.
var ErrWrongCount = errors.New("rotgroup: generated rotation group does not have 24 elements")

// ErrNotOrthogonal indicates a generated matrix failed R*R^T = I or
// det(R) = +1. Also a programming invariant.
var ErrNotOrthogonal = errors.New("rotgroup: generated matrix is not a proper rotation")

// NumRotations is the size of the cube's proper rotation group.
const NumRotations = 24

// Matrix is an integer 3×3 rotation matrix, row-major: Matrix[row][col].
type Matrix [3][3]int

// identity is the neutral element, always present in the group.
var identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Mul returns a*b (matrix product), row-major.
func Mul(a, b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Det returns the determinant of m.
func (m Matrix) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Apply returns m applied to the integer column vector (x,y,z).
func (m Matrix) Apply(x, y, z int) (int, int, int) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// isOrthogonal reports whether m*m^T == I.
func (m Matrix) isOrthogonal() bool {
	return Mul(m, m.Transpose()) == identity
}
