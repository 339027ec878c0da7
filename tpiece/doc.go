// Package tpiece derives the distinct orientations of the T-tetracube
// under the cube rotation group produced by rotgroup.
//
// The canonical T is the four cells {(0,0,0),(1,0,0),(-1,0,0),(0,1,0)}.
// Applying each of the 24 rotations, normalising so the minimum
// coordinate on every axis is zero, and deduplicating by the resulting
// set of cells yields exactly 12 distinct orientations — the T-piece
// has an internal 2-fold symmetry around its stem axis, so half of the
// 24 rotations coincide pairwise after normalisation.
package tpiece
