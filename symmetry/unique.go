package symmetry

import "github.com/EricSpencer00/cubed-pack-solve/rotgroup"

// UniqueSet accumulates canonical forms and a parallel list of one
// representative solution per equivalence class, in first-seen order.
// Not safe for concurrent use; callers sharing a UniqueSet across
// goroutines must serialise access themselves.
type UniqueSet struct {
	rots []rotgroup.Matrix
	seen map[string]struct{}
	reps []Solution
}

// NewUniqueSet creates an empty set that canonicalises under rots.
func NewUniqueSet(rots []rotgroup.Matrix) *UniqueSet {
	return &UniqueSet{
		rots: rots,
		seen: make(map[string]struct{}),
	}
}

// Add computes sol's canonical form and reports whether it is new. If
// new, sol is appended to Representatives() (in insertion order).
func (u *UniqueSet) Add(sol Solution) bool {
	key := CanonicalKey(sol, u.rots)
	if _, dup := u.seen[key]; dup {
		return false
	}
	u.seen[key] = struct{}{}
	u.reps = append(u.reps, sol)
	return true
}

// Representatives returns one arbitrary representative solution per
// equivalence class seen so far, in first-seen order. The returned
// slice is owned by the caller; subsequent Add calls do not mutate it.
func (u *UniqueSet) Representatives() []Solution {
	out := make([]Solution, len(u.reps))
	copy(out, u.reps)
	return out
}

// Len reports the number of distinct equivalence classes seen so far.
func (u *UniqueSet) Len() int {
	return len(u.reps)
}
