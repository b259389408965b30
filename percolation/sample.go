package percolation

import (
	"context"
	"math/rand"

	"github.com/simoninireland/cncp-playground/network"
)

// Sample is one observation of the GCC.
//
// BondPercolation fills P, N, M, Occupied and GCC. ResidualBondPercolation
// also fills Depth, Offset and Context.
type Sample struct {
	// Depth is the residual depth: 0 for the network itself, 1 for its
	// first residual network, and so on.
	Depth int `json:"depth" yaml:"depth"`

	// Context holds the occupation probability recorded at each shallower
	// depth, indexed by depth.
	Context []float64 `json:"context,omitempty" yaml:"context,omitempty,flow"`

	// P is the sample point.
	P float64 `json:"p" yaml:"p"`

	// N is the number of node slots available to the pass.
	N int `json:"n" yaml:"n"`

	// M is the number of edges in the pass's edge list.
	M int `json:"m" yaml:"m"`

	// Occupied is how many of the M edges had been processed when sampled;
	// the residual network handed to the next depth is the remaining M-Occupied.
	Occupied int `json:"occupied" yaml:"occupied"`

	// Offset is the position of the pass's first edge in the top-level permutation.
	Offset int `json:"offset" yaml:"offset"`

	// GCC is the size of the largest component within the pass.
	GCC int `json:"gcc" yaml:"gcc"`
}

// Process is the lifecycle a trial harness drives: Initialize once per
// network, Run per trial, Release when done. A Process is owned by one
// goroutine.
type Process interface {
	// Initialize sizes the internal arrays to nw. It must precede Run.
	Initialize(nw *network.Network) error

	// Run permutes the network's edges with rng and percolates them.
	Run(ctx context.Context, rng *rand.Rand) ([]Sample, error)

	// Release drops the internal arrays. Run fails until the next Initialize.
	Release()
}
