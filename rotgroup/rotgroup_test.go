package rotgroup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateHas24DistinctMatrices(t *testing.T) {
	rots := Generate()
	require.Len(t, rots, NumRotations)

	seen := make(map[Matrix]struct{}, len(rots))
	for _, m := range rots {
		_, dup := seen[m]
		require.False(t, dup, "duplicate rotation matrix %+v", m)
		seen[m] = struct{}{}
	}
}

func TestGenerateMatricesAreProperRotations(t *testing.T) {
	for _, m := range Generate() {
		require.Equal(t, 1, m.Det(), "matrix %+v does not have determinant +1", m)
		require.True(t, m.isOrthogonal(), "matrix %+v is not orthogonal", m)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.Contains(t, []int{-1, 0, 1}, m[i][j])
			}
		}
	}
}

func TestGenerateContainsIdentity(t *testing.T) {
	found := false
	for _, m := range Generate() {
		if m == identity {
			found = true
			break
		}
	}
	require.True(t, found, "identity rotation missing from generated group")
}

func TestMustGenerateDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		rots := MustGenerate()
		require.Len(t, rots, NumRotations)
	})
}

func TestMatrixApplyRotatesAxisAlignedCorner(t *testing.T) {
	// rx should send (0,1,0) -> (0,0,1).
	x, y, z := rx.Apply(0, 1, 0)
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
	require.Equal(t, 1, z)
}
