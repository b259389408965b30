// Package playground simulates bond percolation on networks, including
// residual percolation: percolating what is left of a network after part of
// it has already been occupied.
//
// Layout:
//
//	network/     - node slots, undirected edge lists, YAML codec, BFS component census
//	builder/     - deterministic and seeded random network constructors
//	components/  - union-find component tracking, plain and generation-scoped
//	percolation/ - sample points, bond percolation, residual bond percolation
//	experiment/  - parallel, reproducible trials and their summaries
//	logging/     - zap logger construction and context attachment
//	cmd/percolate - command-line front end
//
// A minimal run:
//
//	nw, _ := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomSparse(1000, 0.005))
//	rp, _ := percolation.NewResidualBondPercolation(percolation.WithDepth(2))
//	_ = rp.Initialize(nw)
//	samples, _ := rp.Run(ctx, rand.New(rand.NewSource(1)))
package playground
