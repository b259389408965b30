package percolation

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/simoninireland/cncp-playground/components"
	"github.com/simoninireland/cncp-playground/network"
)

// BondPercolation samples the GCC of a network as its edges are occupied in
// a random order.
type BondPercolation struct {
	points  []float64
	policy  Policy
	nw      *network.Network
	tracker *components.Tracker
}

var _ Process = (*BondPercolation)(nil)

// NewBondPercolation validates opts and returns an uninitialized process.
// Defaults: DefaultSampleCount evenly spaced points, AtOrAfter.
func NewBondPercolation(opts ...Option) (*BondPercolation, error) {
	cfg, ps, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("NewBondPercolation: %w", err)
	}

	return &BondPercolation{points: ps, policy: cfg.policy}, nil
}

// SamplePoints returns a copy of the resolved sample points.
func (bp *BondPercolation) SamplePoints() []float64 {
	return append([]float64(nil), bp.points...)
}

// Initialize allocates one component record per node slot of nw.
func (bp *BondPercolation) Initialize(nw *network.Network) error {
	if nw == nil || nw.Order() == 0 {
		return fmt.Errorf("BondPercolation.Initialize: %w", ErrEmptyNetwork)
	}
	bp.nw = nw
	bp.tracker = components.NewTracker(nw.Order())

	return nil
}

// Release drops the component records.
func (bp *BondPercolation) Release() {
	bp.nw = nil
	bp.tracker = nil
}

// Run takes one uniformly random permutation of the network's edges from rng
// and percolates it.
func (bp *BondPercolation) Run(ctx context.Context, rng *rand.Rand) ([]Sample, error) {
	if bp.tracker == nil {
		return nil, fmt.Errorf("BondPercolation.Run: %w", ErrNotInitialized)
	}
	if rng == nil {
		return nil, fmt.Errorf("BondPercolation.Run: %w", ErrNeedRandSource)
	}
	es, err := bp.nw.Permutation(rng)
	if err != nil {
		return nil, fmt.Errorf("BondPercolation.Run: %w", err)
	}

	return bp.RunPermutation(ctx, es)
}

// RunPermutation percolates edges in the given order from N singleton
// components. The result depends only on the order.
func (bp *BondPercolation) RunPermutation(ctx context.Context, edges []network.Edge) ([]Sample, error) {
	if bp.tracker == nil {
		return nil, fmt.Errorf("BondPercolation.RunPermutation: %w", ErrNotInitialized)
	}
	bp.tracker.Reset()

	n, m := bp.tracker.Len(), len(edges)
	samples := make([]Sample, 0, len(bp.points))
	err := sweep(ctx, bp.points, bp.policy, m,
		func(i int) {
			bp.tracker.Occupy(edges[i].U, edges[i].V)
		},
		func(p float64, k int) error {
			samples = append(samples, Sample{P: p, N: n, M: m, Occupied: k, GCC: bp.tracker.GCC()})
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("BondPercolation.RunPermutation: %w", err)
	}

	return samples, nil
}
