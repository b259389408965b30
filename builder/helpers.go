package builder

import (
	"fmt"

	"github.com/simoninireland/cncp-playground/network"
)

// addEdgeIfAbsent adds u-v unless the network already holds it and forbids
// parallel edges. Overlaying constructors on the same slots stays idempotent.
func addEdgeIfAbsent(nw *network.Network, method string, u, v int) error {
	if !nw.Multigraph() && nw.HasEdge(u, v) {
		return nil
	}
	if err := nw.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// validateMin ensures got ≥ min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
