// Package network provides the fixed-slot, undirected network that bond
// percolation runs over.
//
// A Network G = (V,E) identifies nodes by integer slots in [0, N) rather than
// by string IDs: percolation only ever cares about topology, and the component
// trackers index their arrays by slot. Slots are never created or destroyed
// during a run; EnsureOrder only grows N while the network is being built.
//
// Configuration Options (Option):
//
//	– WithLoops()
//	    Permits self-loops (u == v); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows parallel edges; otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	EnsureOrder(n int)                    // O(1)
//	AddEdge(u, v int) error               // O(1) amortized
//	HasEdge(u, v int) bool                // O(1)
//	Order() int, Size() int, Degree(u)    // O(1)
//	Edges() []Edge                        // O(E) copy in insertion order
//	Permutation(rng) []Edge               // O(E) uniformly shuffled copy
//
// Serialization:
//
//	Decode(r) / (*Network).Encode(w) read and write the YAML form
//
//	    nodes: 4
//	    edges: [[0, 1], [1, 2], [2, 3]]
//
// Concurrency:
//
// All methods are safe for concurrent use. Independent percolation trials
// share one Network read-only and take their own permutation of its edges.
package network
