package placement

import (
	"sort"

	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/tpiece"
)

// Enumerate slides every orientation across every in-bounds translation
// of the lattice and returns the resulting placements in deterministic
// order: orientation order (as given), then ascending (dz, dy, dx)
// within an orientation. Output is defensively deduplicated via a
// transient existence-check map, though the geometry does not produce
// duplicates in practice; emission order is always the generation
// order above, never map iteration order.
func Enumerate(orientations []tpiece.Orientation) []Placement {
	seen := make(map[Placement]struct{}, ReferenceCount)
	result := make([]Placement, 0, ReferenceCount)

	for _, o := range orientations {
		mx, my, mz := o.Extent()
		for dz := 0; dz <= cell.Size-1-mz; dz++ {
			for dy := 0; dy <= cell.Size-1-my; dy++ {
				for dx := 0; dx <= cell.Size-1-mx; dx++ {
					p := translate(o, dx, dy, dz)
					if _, dup := seen[p]; dup {
						continue
					}
					seen[p] = struct{}{}
					result = append(result, p)
				}
			}
		}
	}
	return result
}

// translate shifts orientation o by (dx,dy,dz), converts each cell to
// its linear id, and returns the ascending 4-tuple. Panics via
// ErrOutOfBounds if a resulting cell is out of bounds — unreachable
// given Enumerate's own bounds on dx/dy/dz, kept as a defensive
// assertion per the package's programming-invariant policy.
func translate(o tpiece.Orientation, dx, dy, dz int) Placement {
	var ids [4]int
	for i, c := range o {
		p := cell.Point{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
		if !p.InBounds() {
			panic(ErrOutOfBounds)
		}
		ids[i] = cell.ToIndex(p)
	}
	sort.Ints(ids[:])
	return Placement{ids[0], ids[1], ids[2], ids[3]}
}

// MustEnumerate calls Enumerate with tpiece.MustOrientations and
// asserts the result matches ReferenceCount. Panics on mismatch: a
// stable placement count is a hard contract the DLX row space depends
// on.
func MustEnumerate() []Placement {
	placements := Enumerate(tpiece.MustOrientations())
	if len(placements) != ReferenceCount {
		panic(ErrWrongCount)
	}
	return placements
}
