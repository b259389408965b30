package main

import (
	"fmt"
	"os"

	"github.com/simoninireland/cncp-playground/builder"
	"github.com/simoninireland/cncp-playground/network"
)

// loadNetwork reads cfg.Input, or builds the generator cfg.Kind names.
func loadNetwork(cfg NetworkConfig) (*network.Network, error) {
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return network.Decode(f)
	}

	var con builder.Constructor
	switch cfg.Kind {
	case "path":
		con = builder.Path(cfg.Nodes)
	case "cycle":
		con = builder.Cycle(cfg.Nodes)
	case "star":
		con = builder.Star(cfg.Nodes)
	case "complete":
		con = builder.Complete(cfg.Nodes)
	case "grid":
		con = builder.Grid(cfg.Rows, cfg.Cols)
	case "er":
		con = builder.RandomSparse(cfg.Nodes, cfg.EdgeProb)
	case "regular":
		con = builder.RandomRegular(cfg.Nodes, cfg.Degree)
	default:
		return nil, fmt.Errorf("unknown network %q", cfg.Kind)
	}

	return builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithSeed(cfg.Seed)}, con)
}
