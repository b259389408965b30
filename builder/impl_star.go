// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n) and Complete(n).

package builder

import (
	"github.com/simoninireland/cncp-playground/network"
)

// Star returns a Constructor that joins hub slot CenterSlot to leaves 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(nw *network.Network, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		nw.EnsureOrder(n)
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdgeIfAbsent(nw, MethodStar, CenterSlot, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n: every unordered pair {i,j},
// i<j, emitted with i ascending then j ascending.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(nw *network.Network, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		nw.EnsureOrder(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdgeIfAbsent(nw, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
