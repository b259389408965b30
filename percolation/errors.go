package percolation

import "errors"

var (
	// ErrInvalidProbability indicates a sample point outside [0,1] or NaN.
	ErrInvalidProbability = errors.New("percolation: sample probability out of range")

	// ErrNoSamplePoints indicates an empty sample-point set.
	ErrNoSamplePoints = errors.New("percolation: no sample points")

	// ErrInvalidSampleCount indicates a non-positive number of evenly spaced sample points.
	ErrInvalidSampleCount = errors.New("percolation: sample count must be positive")

	// ErrInvalidDepth indicates a residual depth below 1.
	ErrInvalidDepth = errors.New("percolation: residual depth must be at least 1")

	// ErrUnknownPolicy indicates an unrecognised sampling policy.
	ErrUnknownPolicy = errors.New("percolation: unknown sampling policy")

	// ErrEmptyNetwork indicates a network with no node slots.
	ErrEmptyNetwork = errors.New("percolation: network has no nodes")

	// ErrNotInitialized indicates Run before Initialize, or after Release.
	ErrNotInitialized = errors.New("percolation: process not initialized")

	// ErrNeedRandSource indicates Run was given a nil RNG.
	ErrNeedRandSource = errors.New("percolation: rng is required")
)
