// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is slot r*cols + c (row-major).
//   - For each cell in row-major order, emit the right edge then the bottom edge.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"github.com/simoninireland/cncp-playground/network"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood lattice,
// the classic substrate for bond percolation.
func Grid(rows, cols int) Constructor {
	return func(nw *network.Network, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		nw.EnsureOrder(rows * cols)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				// Right neighbour (r, c+1).
				if c+1 < cols {
					if err := addEdgeIfAbsent(nw, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				// Bottom neighbour (r+1, c).
				if r+1 < rows {
					if err := addEdgeIfAbsent(nw, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
