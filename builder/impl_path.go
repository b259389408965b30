// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)-i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3, the path edges followed by the closing edge (n-1)-0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"github.com/simoninireland/cncp-playground/network"
)

// Path returns a Constructor that builds a simple path P_n over slots 0..n-1.
func Path(n int) Constructor {
	return func(nw *network.Network, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		return addPath(nw, MethodPath, n)
	}
}

// Cycle returns a Constructor that builds a ring C_n over slots 0..n-1.
func Cycle(n int) Constructor {
	return func(nw *network.Network, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := addPath(nw, MethodCycle, n); err != nil {
			return err
		}

		// Close the ring.
		return addEdgeIfAbsent(nw, MethodCycle, n-1, 0)
	}
}

// addPath grows nw to n slots and emits 0-1-…-(n-1).
func addPath(nw *network.Network, method string, n int) error {
	nw.EnsureOrder(n)
	for i := 1; i < n; i++ {
		if err := addEdgeIfAbsent(nw, method, i-1, i); err != nil {
			return err
		}
	}

	return nil
}
