// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(nopts, bopts, cons...). Creates nw, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/simoninireland/cncp-playground/network"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors validate parameters before touching the
// network and return sentinel errors instead of panicking.
type Constructor func(nw *network.Network, cfg builderConfig) error

// BuildNetwork creates an empty network.Network with options nopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildNetwork: %w".
//
// Complexity: Σ cost of each constructor plus O(len(bopts)).
func BuildNetwork(nopts []network.Option, bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	nw, err := network.New(0, nopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}
	if err = Apply(nw, bopts, cons...); err != nil {
		return nil, err
	}

	return nw, nil
}

// Apply runs constructors against an existing network.
func Apply(nw *network.Network, bopts []BuilderOption, cons ...Constructor) error {
	if nw == nil {
		return fmt.Errorf("BuildNetwork: nil network: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nw, cfg); err != nil {
			return fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return nil
}
