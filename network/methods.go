// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: slot and edge lifecycle, read-only queries and edge permutation.
// Concurrency:
//   - Mutations under mu write lock.
//   - Queries under mu read lock; slices are returned as copies.

package network

import (
	"fmt"
	"math/rand"
)

// EnsureOrder grows the network to at least n node slots. Existing slots
// and edges are untouched; a smaller n is a no-op.
// Complexity: O(n - Order()) amortized.
func (nw *Network) EnsureOrder(n int) {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	for nw.order < n {
		nw.degrees = append(nw.degrees, 0)
		nw.order++
	}
}

// AddEdge appends the undirected edge u-v.
//
// Steps:
//  1. Validate both slots are in range.
//  2. Reject a self-loop unless WithLoops was given.
//  3. Reject a parallel edge unless WithMultiEdges was given.
//  4. Append to the edge list and update degrees.
//
// Complexity: O(1) amortized.
func (nw *Network) AddEdge(u, v int) error {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	// 1) Slot range
	if u < 0 || u >= nw.order {
		return fmt.Errorf("AddEdge(%d,%d): u=%d not in [0,%d): %w", u, v, u, nw.order, ErrSlotOutOfRange)
	}
	if v < 0 || v >= nw.order {
		return fmt.Errorf("AddEdge(%d,%d): v=%d not in [0,%d): %w", u, v, v, nw.order, ErrSlotOutOfRange)
	}

	// 2) Loop constraint
	if u == v && !nw.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	// 3) Multi-edge constraint
	e := Edge{U: u, V: v}
	k := e.key()
	if !nw.allowMulti && nw.present[k] > 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	// 4) Store
	nw.edges = append(nw.edges, e)
	nw.present[k]++
	nw.degrees[u]++
	if u != v {
		nw.degrees[v]++
	}

	return nil
}

// HasEdge reports whether at least one edge joins u and v (in either order).
// Complexity: O(1).
func (nw *Network) HasEdge(u, v int) bool {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.present[Edge{U: u, V: v}.key()] > 0
}

// Order returns the number of node slots N.
func (nw *Network) Order() int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.order
}

// Size returns the number of edges M.
func (nw *Network) Size() int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return len(nw.edges)
}

// Degree returns the number of edge endpoints at slot u, or 0 when u is out of range.
// A self-loop contributes one.
func (nw *Network) Degree(u int) int {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	if u < 0 || u >= nw.order {
		return 0
	}

	return nw.degrees[u]
}

// Looped reports whether self-loops are permitted.
func (nw *Network) Looped() bool {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (nw *Network) Multigraph() bool {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.allowMulti
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E) time and space.
func (nw *Network) Edges() []Edge {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	out := make([]Edge, len(nw.edges))
	copy(out, nw.edges)

	return out
}

// Permutation returns a uniformly random permutation of the edge list drawn
// from rng. The network itself is not reordered, so concurrent trials can
// each take their own permutation.
// Complexity: O(E) time and space.
func (nw *Network) Permutation(rng *rand.Rand) ([]Edge, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	es := nw.Edges()
	rng.Shuffle(len(es), func(i, j int) {
		es[i], es[j] = es[j], es[i]
	})

	return es, nil
}
