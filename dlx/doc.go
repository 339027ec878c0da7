// Package dlx implements Knuth's Algorithm X via Dancing Links: a
// toroidal doubly-linked matrix over the 216 lattice cells (columns)
// and the placements from package placement (rows), enumerating every
// exact cover (every raw solution) lazily.
//
// Rather than a graph of pointer-linked node objects, Matrix is a
// single arena of parallel index slices (left, right, up, down,
// column, rowOf). Cover and uncover manipulate only int32 neighbour
// fields, so there is no cyclic ownership question and the structure
// is cache-friendly — the same move core.Graph's adjacency list and
// matrix.Dense's row-major buffer make over naive pointer graphs.
//
// Search is exposed as a pull-style, cancellable iterator (Solutions):
// the DLX recursion runs on its own goroutine, emitting each raw
// solution through a rendezvous channel and blocking until the caller
// asks for the next one or requests Stop. Early termination unblocks
// the goroutine's pending send, the recursion unwinds, and the
// goroutine exits without leaking.
package dlx
