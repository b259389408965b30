// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Unordered pairs {i,j}, i<j, are trialled with i ascending then j ascending;
//     self-loops are never generated.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/simoninireland/cncp-playground/network"
)

// RandomSparse returns a Constructor that includes each unordered pair of
// slots 0..n-1 independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Slots first, so isolated nodes still count towards N.
		nw.EnsureOrder(n)

		// 3) Bernoulli trial per unordered pair in a stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch {
				case p == MaxProbability:
					take = true
				case p == MinProbability:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addEdgeIfAbsent(nw, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
