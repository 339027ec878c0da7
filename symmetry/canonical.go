package symmetry

import (
	"sort"
	"strings"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/rotgroup"
)

// rotateSolution rotates every cell of every piece in sol by r,
// leaving sol itself untouched.
func rotateSolution(sol Solution, r rotgroup.Matrix) Solution {
	out := make(Solution, len(sol))
	for i, piece := range sol {
		var rotated Piece
		for j, p := range piece {
			rotated[j] = Rotate(p, r)
		}
		out[i] = rotated
	}
	return out
}

// pieceKey renders one piece as a sorted, fixed-width, lexicographically
// comparable string of its 4 cell ids.
func pieceKey(piece Piece) string {
	ids := make([]int, len(piece))
	for i, p := range piece {
		ids[i] = cell.ToIndex(p)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteByte(byte('0' + id/100))
		b.WriteByte(byte('0' + (id/10)%10))
		b.WriteByte(byte('0' + id%10))
	}
	return b.String()
}

// solutionKey renders a solution as the sorted concatenation of its
// pieces' keys: sort(sort(piece) for piece in pieces). Sorting within
// and across pieces makes the key independent of piece and cell
// ordering, so only the partition into pieces affects equality.
func solutionKey(sol Solution) string {
	keys := make([]string, len(sol))
	for i, piece := range sol {
		keys[i] = pieceKey(piece)
	}
	sort.Strings(keys)
	return strings.Join(keys, "")
}

// CanonicalKey computes the lexicographic minimum, over every rotation
// in rots, of solutionKey(r*sol). Any rotation achieving the minimum is
// an equally valid witness; only the returned key matters for equality.
func CanonicalKey(sol Solution, rots []rotgroup.Matrix) string {
	best := ""
	for i, r := range rots {
		key := solutionKey(rotateSolution(sol, r))
		if i == 0 || key < best {
			best = key
		}
	}
	return best
}
