package percolation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simoninireland/cncp-playground/builder"
	"github.com/simoninireland/cncp-playground/network"
	"github.com/simoninireland/cncp-playground/percolation"
)

// scenarioPoints are the sample points of the 4-node path scenarios.
var scenarioPoints = []float64{0.0, 0.34, 0.67, 1.0}

// pathNetwork returns the path 0-1-2-3 and its edges in insertion order,
// which is the permutation the scenarios use.
func pathNetwork(t testing.TB) (*network.Network, []network.Edge) {
	t.Helper()
	nw, err := builder.BuildNetwork(nil, nil, builder.Path(4))
	require.NoError(t, err)

	return nw, nw.Edges()
}

// randomNetwork returns a seeded Erdős–Rényi network.
func randomNetwork(t testing.TB, n int, p float64, seed int64) *network.Network {
	t.Helper()
	nw, err := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return nw
}

// gccs extracts the GCC column.
func gccs(ss []percolation.Sample) []int {
	out := make([]int, len(ss))
	for i, s := range ss {
		out[i] = s.GCC
	}

	return out
}

// passKey identifies the pass a residual sample came from.
func passKey(s percolation.Sample) string {
	return fmt.Sprintf("%d/%d/%v", s.Depth, s.Offset, s.Context)
}
