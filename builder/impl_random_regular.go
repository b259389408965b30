// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Model: stub matching. Each slot contributes d stubs; the stubs are shuffled
// and paired consecutively. A pairing is validated against the network's
// loop/multi-edge policy before any mutation; invalid pairings are reshuffled
// up to maxStubMatchingAttempts times.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after the attempt limit.
//
// Complexity: ~O(n·d) per attempt, O(n·d) temporary space for stubs.

package builder

import (
	"fmt"

	"github.com/simoninireland/cncp-playground/network"
)

// RandomRegular returns a Constructor that builds a d-regular network over
// slots 0..n-1.
func RandomRegular(n, d int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		// 1) Parameter validation.
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		nw.EnsureOrder(n)

		// 2) Stub list: slot i repeated d times.
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		allowLoops := nw.Looped()
		allowMulti := nw.Multigraph()
		rng := cfg.rng

		// 3) Bounded reshuffles until the pairing respects the network's policy.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			if !validPairing(nw, stubs, allowLoops, allowMulti) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err := nw.AddEdge(stubs[i], stubs[i+1]); err != nil {
					return fmt.Errorf("%s: %w", MethodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing checks consecutive stub pairs without mutating nw.
func validPairing(nw *network.Network, stubs []int, allowLoops, allowMulti bool) bool {
	var seen map[[2]int]struct{}
	if !allowMulti {
		seen = make(map[[2]int]struct{}, len(stubs)/2)
	}
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if !allowLoops && u == v {
			return false
		}
		if allowMulti {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup || nw.HasEdge(u, v) {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
