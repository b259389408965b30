package percolation

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/simoninireland/cncp-playground/components"
	"github.com/simoninireland/cncp-playground/network"
)

// ResidualBondPercolation percolates a network and, at every sample point,
// recursively percolates the residual network of edges not yet occupied, up
// to a maximum depth.
//
// All passes share one GenerationTracker: a pass's slots are closed to the
// passes it spawns, and reclaimed once those passes return.
type ResidualBondPercolation struct {
	points  []float64
	policy  Policy
	depth   int
	nw      *network.Network
	tracker *components.GenerationTracker
	context []float64 // sample points of the passes on the stack
}

var _ Process = (*ResidualBondPercolation)(nil)

// NewResidualBondPercolation validates opts and returns an uninitialized
// process. Defaults: DefaultSampleCount evenly spaced points, AtOrAfter,
// depth DefaultDepth. A depth below 1 is ErrInvalidDepth.
func NewResidualBondPercolation(opts ...Option) (*ResidualBondPercolation, error) {
	cfg, ps, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("NewResidualBondPercolation: %w", err)
	}
	if cfg.depth < 1 {
		return nil, fmt.Errorf("NewResidualBondPercolation: depth=%d: %w", cfg.depth, ErrInvalidDepth)
	}

	return &ResidualBondPercolation{points: ps, policy: cfg.policy, depth: cfg.depth}, nil
}

// Depth returns the maximum residual depth.
func (rp *ResidualBondPercolation) Depth() int { return rp.depth }

// SamplePoints returns a copy of the resolved sample points.
func (rp *ResidualBondPercolation) SamplePoints() []float64 {
	return append([]float64(nil), rp.points...)
}

// Initialize allocates the component and generation records for nw.
func (rp *ResidualBondPercolation) Initialize(nw *network.Network) error {
	if nw == nil || nw.Order() == 0 {
		return fmt.Errorf("ResidualBondPercolation.Initialize: %w", ErrEmptyNetwork)
	}
	rp.nw = nw
	rp.tracker = components.NewGenerationTracker(nw.Order())
	rp.context = make([]float64, 0, rp.depth)

	return nil
}

// Release drops the records.
func (rp *ResidualBondPercolation) Release() {
	rp.nw = nil
	rp.tracker = nil
	rp.context = nil
}

// Run takes one uniformly random permutation of the network's edges from rng
// and percolates it and its residuals.
func (rp *ResidualBondPercolation) Run(ctx context.Context, rng *rand.Rand) ([]Sample, error) {
	if rp.tracker == nil {
		return nil, fmt.Errorf("ResidualBondPercolation.Run: %w", ErrNotInitialized)
	}
	if rng == nil {
		return nil, fmt.Errorf("ResidualBondPercolation.Run: %w", ErrNeedRandSource)
	}
	es, err := rp.nw.Permutation(rng)
	if err != nil {
		return nil, fmt.Errorf("ResidualBondPercolation.Run: %w", err)
	}

	return rp.RunPermutation(ctx, es)
}

// RunPermutation percolates edges in the given order, starting from every
// slot unclaimed. Samples are ordered depth-first: each sample is followed
// by every sample of the residual passes it spawned.
func (rp *ResidualBondPercolation) RunPermutation(ctx context.Context, edges []network.Edge) ([]Sample, error) {
	if rp.tracker == nil {
		return nil, fmt.Errorf("ResidualBondPercolation.RunPermutation: %w", ErrNotInitialized)
	}
	rp.tracker.Reset()
	rp.context = rp.context[:0]

	samples, err := rp.percolate(ctx, edges, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("ResidualBondPercolation.RunPermutation: %w", err)
	}

	return samples, nil
}

// percolate runs one pass over edges, which start at offset in the top-level
// permutation.
//
// Steps:
//  1. Enter a new generation; N is what the parent's generation leaves free.
//  2. Sweep the edges through the generation-scoped tracker.
//  3. At each sample, if depth < D, percolate edges[k:] one level deeper with
//     this sample's p pushed onto the context.
//  4. Leave, restoring the caller's boundary and GCC counter.
func (rp *ResidualBondPercolation) percolate(ctx context.Context, edges []network.Edge, offset, depth int) ([]Sample, error) {
	// 1) New generation.
	rp.tracker.Enter()
	defer rp.tracker.Leave()
	n, m := rp.tracker.Available(), len(edges)

	var samples []Sample
	err := sweep(ctx, rp.points, rp.policy, m,
		// 2) Occupy within this generation.
		func(i int) {
			rp.tracker.Occupy(edges[i].U, edges[i].V)
		},
		func(p float64, k int) error {
			samples = append(samples, Sample{
				Depth:    depth,
				Context:  append([]float64(nil), rp.context...),
				P:        p,
				N:        n,
				M:        m,
				Occupied: k,
				Offset:   offset,
				GCC:      rp.tracker.GCC(),
			})

			// 3) Residual pass over the edges not yet occupied.
			if depth >= rp.depth {
				return nil
			}
			rp.context = append(rp.context, p)
			sub, err := rp.percolate(ctx, edges[k:], offset+k, depth+1)
			rp.context = rp.context[:len(rp.context)-1]
			if err != nil {
				return err
			}
			samples = append(samples, sub...)

			return nil
		})

	return samples, err
}
