// Command cubesolve (see cmd/cubesolve) enumerates every tiling of a
// 6×6×6 integer lattice by 54 T-tetracubes, up to the cube's
// rotational symmetry.
//
// The pipeline is a chain of small packages, each owning one stage:
//
//	rotgroup   the cube's 24 proper rotations
//	tpiece     the T-tetracube's 12 distinct orientations
//	placement  every in-bounds translation of every orientation
//	dlx        Knuth's Dancing Links exact-cover search
//	symmetry   canonical forms and rotation-aware deduplication
//	tutorial   a gravity-safe, access-safe assembly order
//	solver     wires the above into a configurable driver
package cubedpacksolve
