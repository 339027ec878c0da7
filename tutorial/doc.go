// Package tutorial reorders a completed tiling's 54 pieces into a
// physically realisable, corner-first assembly sequence: at each step
// it picks, among the pieces not yet placed, the one that is both
// gravity-supported and accessible with the lowest scalar score, with
// a deterministic fallback when nothing qualifies.
//
// The selection loop mirrors the branch-and-bound branching-order
// idiom (score every live candidate, take the lowest score, break ties
// by index) that the corpus uses for deterministic, reproducible
// search order; here the "search" is a single greedy pass rather than
// backtracking, since a single valid, deterministic assembly order is
// all that's needed here — there is no optimality criterion to search for.
package tutorial
