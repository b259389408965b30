// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Network, Option and sentinel errors; the New constructor.

package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrSlotOutOfRange indicates a node slot outside [0, Order()).
	ErrSlotOutOfRange = errors.New("network: node slot out of range")

	// ErrNegativeOrder indicates a negative node count.
	ErrNegativeOrder = errors.New("network: negative order")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("network: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("network: multi-edges not allowed")

	// ErrNeedRandSource indicates a permutation was requested without an RNG.
	ErrNeedRandSource = errors.New("network: rng is required")

	// ErrBadDocument indicates a malformed YAML network document.
	ErrBadDocument = errors.New("network: malformed document")
)

// Edge is an unordered pair of node slots.
type Edge struct {
	U int
	V int
}

// key returns the canonical (min,max) form used for multi-edge detection.
func (e Edge) key() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Option configures a Network before creation.
type Option func(nw *Network)

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(nw *Network) { nw.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same slots.
func WithMultiEdges() Option {
	return func(nw *Network) { nw.allowMulti = true }
}

// Network is an undirected network over a fixed set of integer node slots.
//
// mu guards every field; the edge slice keeps insertion order so that a
// given seed always permutes the same sequence.
type Network struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	order   int
	edges   []Edge
	degrees []int
	present map[Edge]int // canonical pair → multiplicity
}

// New creates a Network with n isolated node slots.
// By default loops and multi-edges are rejected.
// Complexity: O(n)
func New(n int, opts ...Option) (*Network, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	nw := &Network{
		order:   n,
		degrees: make([]int, n),
		present: make(map[Edge]int),
	}
	for _, opt := range opts {
		opt(nw)
	}

	return nw, nil
}
