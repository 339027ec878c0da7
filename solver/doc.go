// Package solver wires placement -> dlx -> symmetry (optionally ->
// tutorial) into a single driver, verifying every accepted solution
// and reporting progress at solution boundaries.
//
// Configuration follows the corpus's functional-options dispatcher
// shape (tsp.Options/DefaultOptions, bfs.Option): Run takes zero or
// more Option values that mutate a private config, validated up front
// rather than panicking on bad runtime values. Progress is delivered
// via a caller-supplied callback (WithProgress), the same hook style
// bfs.Option uses for OnVisit/OnEnqueue, not a package-level logger.
package solver
