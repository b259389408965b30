// Package percolation runs bond percolation experiments over a network.Network
// and records the size of the giant connected component (GCC) at chosen
// occupation probabilities.
//
// What & Why
//
//   - Bond percolation occupies the edges of a network one at a time in a
//     uniformly random order. After k of M edges the occupation probability is
//     k/M; sampling the GCC at a set of probabilities traces the percolation
//     transition in a single O(M) sweep (the Newman–Ziff method).
//
//   - Residual percolation takes the edges still unoccupied when a sample is
//     recorded, treats them as an independent residual network, and percolates
//     that too, recursively, up to a maximum depth. All depths share one
//     generation-scoped component tracker (see package components).
//
// Processes
//
//   - BondPercolation: one pass; Sample records {P, N, M, Occupied, GCC}.
//   - ResidualBondPercolation: recursive passes; Sample records also carry
//     Depth, Offset and Context, the occupation probabilities at every
//     shallower depth. A parent's sample is followed by all of its
//     descendants' samples (depth-first).
//
// Both implement Process, the Initialize / Run / Release lifecycle a trial
// harness drives.
//
// Sampling
//
// Sample points are validated into [0,1], deduplicated and sorted. The Policy
// decides where a point p falls between occupation states, including the
// state before any edge is occupied; a point of exactly 0 always lands there:
//
//   - AtOrAfter: the first state with k/M ≥ p (the default).
//   - AtOrBefore: the last state with k/M ≤ p, i.e. k = ⌊p·M⌋.
//
// Several points falling on the same state each produce a sample with the
// same GCC.
//
// Errors
//
//   - ErrInvalidProbability, ErrNoSamplePoints, ErrInvalidSampleCount,
//     ErrInvalidDepth, ErrUnknownPolicy: configuration, from the constructors.
//   - ErrEmptyNetwork: Initialize with a zero-node network.
//   - ErrNotInitialized: Run before Initialize or after Release.
//   - ErrNeedRandSource: Run with a nil RNG.
//
// Determinism: for a fixed permutation of edges both processes produce
// identical sample sequences. Cancellation of the context is checked between
// edge-processing steps.
package percolation
