// Package builder provides functional-options constructors for the networks
// that percolation experiments run over.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildNetwork:  creates a network.Network, resolves options, applies constructors in order.
//     – Constructor:   a closure that mutates the network deterministically.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG for stochastic constructors.
//   - Topologies:
//     – Path, Cycle, Star, Complete, Grid (deterministic).
//     – RandomSparse (Erdős–Rényi G(n,p)), RandomRegular (stub matching).
//
// Guarantees:
//
//   - Constructors address slots 0..n-1 and grow the network with EnsureOrder,
//     so composing two constructors overlays them on the same low slots.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     constructor name for context.
//   - Same seed and constructor order ⇒ identical edge lists.
package builder
