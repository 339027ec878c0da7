package symmetry

import (
	"github.com/EricSpencer00/cubed-pack-solve/cell"
	"github.com/EricSpencer00/cubed-pack-solve/rotgroup"
)

// centerOffset is Size-1: doubling every coordinate and subtracting
// this centres the lattice at the origin without leaving integers,
// since the true centre (2.5,...,2.5 for Size=6) doubled is exactly
// Size-1.
const centerOffset = cell.Size - 1

// Rotate applies r to p about the cube's centre, exactly (see doc.go
// for the doubled-coordinate argument). Panics with
// ErrRotationNotExact if the parity argument is violated — that can
// only happen if r is not a genuine cube symmetry.
func Rotate(p cell.Point, r rotgroup.Matrix) cell.Point {
	qx, qy, qz := 2*p.X-centerOffset, 2*p.Y-centerOffset, 2*p.Z-centerOffset
	rqx, rqy, rqz := r.Apply(qx, qy, qz)

	if (rqx+centerOffset)%2 != 0 || (rqy+centerOffset)%2 != 0 || (rqz+centerOffset)%2 != 0 {
		panic(ErrRotationNotExact)
	}

	return cell.Point{
		X: (rqx + centerOffset) / 2,
		Y: (rqy + centerOffset) / 2,
		Z: (rqz + centerOffset) / 2,
	}
}

// AssertRotationsPreserveLattice spot-samples every rotation in rots
// against a deterministic subset of lattice points (every corner,
// every face centre, and the two diagonal interior points) and panics
// with ErrRotationOutOfBounds if any rotated point leaves [0,Size). A
// genuine cube rotation can never do this, so a panic here means rots
// contains something that is not actually a symmetry of the cube.
func AssertRotationsPreserveLattice(rots []rotgroup.Matrix) {
	samples := sampleLatticePoints()
	for _, r := range rots {
		for _, p := range samples {
			rp := Rotate(p, r)
			if !rp.InBounds() {
				panic(ErrRotationOutOfBounds)
			}
		}
	}
}

// sampleLatticePoints returns a small, deterministic, representative
// sample of lattice points: the 8 corners, the 6 face centres, and 2
// interior diagonal points.
func sampleLatticePoints() []cell.Point {
	const max = cell.Size - 1
	mid := cell.Size / 2
	return []cell.Point{
		{0, 0, 0}, {max, 0, 0}, {0, max, 0}, {0, 0, max},
		{max, max, 0}, {max, 0, max}, {0, max, max}, {max, max, max},
		{mid, mid, 0}, {mid, mid, max}, {mid, 0, mid}, {mid, max, mid},
		{0, mid, mid}, {max, mid, mid},
		{2, 2, 2}, {3, 3, 3},
	}
}
