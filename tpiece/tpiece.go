package tpiece

import (
	"sort"

	"github.com/EricSpencer00/cubed-pack-solve/rotgroup"
)

// normalize subtracts the component-wise minimum from every cell so
// the result's minimum coordinate is zero on every axis, then sorts
// the cells ascending (x, then y, then z) for a stable set identity.
func normalize(cells [CellsPerPiece]Offset) Orientation {
	minX, minY, minZ := cells[0].X, cells[0].Y, cells[0].Z
	for _, c := range cells {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Z < minZ {
			minZ = c.Z
		}
	}

	var out Orientation
	for i, c := range cells {
		out[i] = Offset{X: c.X - minX, Y: c.Y - minY, Z: c.Z - minZ}
	}
	sort.Slice(out[:], func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return out
}

// Orientations applies every rotation in rots to the canonical T,
// normalises each result, and deduplicates by the normalised cell set.
// Order is deterministic: first-seen order over the rots slice.
func Orientations(rots []rotgroup.Matrix) []Orientation {
	seen := make(map[Orientation]struct{}, NumOrientations)
	result := make([]Orientation, 0, NumOrientations)

	for _, r := range rots {
		var rotated [CellsPerPiece]Offset
		for i, c := range canonicalT {
			x, y, z := r.Apply(c.X, c.Y, c.Z)
			rotated[i] = Offset{X: x, Y: y, Z: z}
		}
		o := normalize(rotated)
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		result = append(result, o)
	}
	return result
}

// MustOrientations calls Orientations with rotgroup.MustGenerate and
// asserts the 12-orientation contract: exactly 12 results, each of
// size 4 (guaranteed by the array type), each containing (0,0,0).
// Panics on violation; this is a programming invariant, not a runtime
// condition a caller can recover from.
func MustOrientations() []Orientation {
	orientations := Orientations(rotgroup.MustGenerate())
	if len(orientations) != NumOrientations {
		panic(ErrWrongCount)
	}
	for _, o := range orientations {
		hasOrigin := false
		for _, c := range o {
			if c == (Offset{0, 0, 0}) {
				hasOrigin = true
				break
			}
		}
		if !hasOrigin {
			panic(ErrBadOrientation)
		}
	}
	return orientations
}
