package percolation_test

import (
	"context"
	"fmt"

	"github.com/simoninireland/cncp-playground/builder"
	"github.com/simoninireland/cncp-playground/percolation"
)

// ExampleBondPercolation percolates a 5-node path edge by edge.
func ExampleBondPercolation() {
	nw, _ := builder.BuildNetwork(nil, nil, builder.Path(5))
	bp, _ := percolation.NewBondPercolation(percolation.WithSampleCount(5))
	_ = bp.Initialize(nw)
	defer bp.Release()

	ss, _ := bp.RunPermutation(context.Background(), nw.Edges())
	for _, s := range ss {
		fmt.Printf("p=%.2f gcc=%d\n", s.P, s.GCC)
	}
	// Output:
	// p=0.00 gcc=1
	// p=0.25 gcc=2
	// p=0.50 gcc=3
	// p=0.75 gcc=4
	// p=1.00 gcc=5
}

// ExampleResidualBondPercolation shows the residual network left after
// half the edges of a 5-node path are occupied.
func ExampleResidualBondPercolation() {
	nw, _ := builder.BuildNetwork(nil, nil, builder.Path(5))
	rp, _ := percolation.NewResidualBondPercolation(
		percolation.WithSamplePoints(0.5, 1),
		percolation.WithDepth(1))
	_ = rp.Initialize(nw)
	defer rp.Release()

	ss, _ := rp.RunPermutation(context.Background(), nw.Edges())
	for _, s := range ss {
		fmt.Printf("depth=%d context=%v p=%.1f edges=%d..%d gcc=%d\n",
			s.Depth, s.Context, s.P, s.Offset, s.Offset+s.M, s.GCC)
	}
	// Output:
	// depth=0 context=[] p=0.5 edges=0..4 gcc=3
	// depth=1 context=[0.5] p=0.5 edges=2..4 gcc=1
	// depth=1 context=[0.5] p=1.0 edges=2..4 gcc=2
	// depth=0 context=[] p=1.0 edges=0..4 gcc=5
}
