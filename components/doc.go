// Package components tracks connected components incrementally as edges are
// occupied, the engine underneath bond percolation.
//
// What & Why
//
//   - Tracker is a disjoint-set (union-find) over a fixed set of N node slots.
//     Each slot holds either the index of its parent slot, or, for a root, the
//     negated size of its component. The largest size seen so far is kept as
//     the GCC (giant connected component) counter.
//
//   - GenerationTracker reuses one Tracker's storage for a stack of nested,
//     independent percolation passes. Every slot carries the generation that
//     owns it; each pass entered gets a fresh generation id and remembers the
//     generation of the pass that spawned it (its boundary). A slot owned by
//     the boundary or anything older is off-limits; a slot owned by anything
//     newer belongs to a pass that has already returned and may be reclaimed.
//     One integer comparison replaces an undo log.
//
// Algorithms
//
//   - FindRoot: iterative walk to the root, then a second pass pointing every
//     visited slot straight at it (path compression). No recursion, so long
//     chains cannot exhaust the stack.
//   - Merge: unconditionally hangs the second root under the first. There is
//     no union-by-size; path compression keeps the amortised cost low for the
//     random edge orders percolation produces.
//
// Complexity
//
//   - NewTracker / Reset: O(N).
//   - FindRoot, Occupy, Resolve: amortised O(log N) worst case, close to O(1)
//     on random orderings.
//   - Merge: O(1).
//   - Available: O(N).
//
// Invariant violations (slots out of range, merging a slot that is not a root,
// merging a component with itself) are programming errors in the caller and
// panic with an error wrapping ErrInvariant.
//
// Neither type is safe for concurrent use; each percolation trial owns its own.
package components
