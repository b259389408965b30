package percolation_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoninireland/cncp-playground/builder"
	"github.com/simoninireland/cncp-playground/network"
	"github.com/simoninireland/cncp-playground/percolation"
)

// TestBond_PathScenario_AtOrBefore: each point is recorded at ⌊p·M⌋ edges,
// so 0.34 sees one edge and 0.67 two.
func TestBond_PathScenario_AtOrBefore(t *testing.T) {
	nw, perm := pathNetwork(t)
	bp, err := percolation.NewBondPercolation(
		percolation.WithSamplePoints(scenarioPoints...),
		percolation.WithPolicy(percolation.AtOrBefore))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	got, err := bp.RunPermutation(context.Background(), perm)
	require.NoError(t, err)

	want := []percolation.Sample{
		{P: 0.0, N: 4, M: 3, Occupied: 0, GCC: 1},
		{P: 0.34, N: 4, M: 3, Occupied: 1, GCC: 2},
		{P: 0.67, N: 4, M: 3, Occupied: 2, GCC: 3},
		{P: 1.0, N: 4, M: 3, Occupied: 3, GCC: 4},
	}
	assert.Equal(t, want, got)
}

// TestBond_PathScenario_AtOrAfter: each point is recorded at the first edge
// whose fraction reaches it; 1/3 < 0.34 and 2/3 < 0.67.
func TestBond_PathScenario_AtOrAfter(t *testing.T) {
	nw, perm := pathNetwork(t)
	bp, err := percolation.NewBondPercolation(percolation.WithSamplePoints(scenarioPoints...))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	got, err := bp.RunPermutation(context.Background(), perm)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 4}, gccs(got))
	assert.Equal(t, 3, got[2].Occupied)
	assert.Equal(t, 3, got[3].Occupied, "ties share one occupation state")
}

func TestBond_ExactFractionsAgreeAcrossPolicies(t *testing.T) {
	nw, err := builder.BuildNetwork(nil, nil, builder.Cycle(8))
	require.NoError(t, err)
	perm := nw.Edges()

	var results [][]percolation.Sample
	for _, policy := range []percolation.Policy{percolation.AtOrAfter, percolation.AtOrBefore} {
		bp, err := percolation.NewBondPercolation(percolation.WithSampleCount(9), percolation.WithPolicy(policy))
		require.NoError(t, err)
		require.NoError(t, bp.Initialize(nw))
		ss, err := bp.RunPermutation(context.Background(), perm)
		require.NoError(t, err)
		results = append(results, ss)
	}
	assert.Empty(t, cmp.Diff(results[0], results[1]), "points at k/M are placed identically")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 8}, gccs(results[0]))
}

func TestBond_ConnectedNetworkReachesN(t *testing.T) {
	nw, err := builder.BuildNetwork(nil, nil, builder.Grid(6, 7))
	require.NoError(t, err)
	bp, err := percolation.NewBondPercolation(percolation.WithSampleCount(11))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	ss, err := bp.Run(context.Background(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Len(t, ss, 11)
	last := ss[len(ss)-1]
	assert.Equal(t, 1.0, last.P)
	assert.Equal(t, 42, last.GCC)
	assert.Equal(t, nw.Size(), last.Occupied)
}

func TestBond_GCCNonDecreasing(t *testing.T) {
	nw := randomNetwork(t, 300, 0.01, 9)
	bp, err := percolation.NewBondPercolation()
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	for seed := int64(0); seed < 5; seed++ {
		ss, err := bp.Run(context.Background(), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		for i := 1; i < len(ss); i++ {
			require.GreaterOrEqual(t, ss[i].GCC, ss[i-1].GCC, "seed %d sample %d", seed, i)
			require.Greater(t, ss[i].P, ss[i-1].P)
		}
	}
}

func TestBond_NoEdges(t *testing.T) {
	nw, err := network.New(5)
	require.NoError(t, err)
	bp, err := percolation.NewBondPercolation(percolation.WithSamplePoints(0, 0.5, 1))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	ss, err := bp.Run(context.Background(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []percolation.Sample{{P: 0, N: 5, M: 0, GCC: 1}}, ss)

	// Without a zero point nothing can be sampled.
	bp, err = percolation.NewBondPercolation(percolation.WithSamplePoints(0.5, 1))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))
	ss, err = bp.Run(context.Background(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Empty(t, ss)
}

func TestBond_Deterministic(t *testing.T) {
	nw := randomNetwork(t, 200, 0.02, 4)
	run := func() []percolation.Sample {
		bp, err := percolation.NewBondPercolation(percolation.WithSampleCount(50))
		require.NoError(t, err)
		require.NoError(t, bp.Initialize(nw))
		ss, err := bp.Run(context.Background(), rand.New(rand.NewSource(77)))
		require.NoError(t, err)
		return ss
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Fatalf("runs differ (-first +second):\n%s", diff)
	}
}

func TestBond_RepeatedRunsStartFresh(t *testing.T) {
	nw, perm := pathNetwork(t)
	bp, err := percolation.NewBondPercolation(percolation.WithSamplePoints(scenarioPoints...))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	first, err := bp.RunPermutation(context.Background(), perm)
	require.NoError(t, err)
	second, err := bp.RunPermutation(context.Background(), perm)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBond_Lifecycle(t *testing.T) {
	bp, err := percolation.NewBondPercolation()
	require.NoError(t, err)

	_, err = bp.Run(context.Background(), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, percolation.ErrNotInitialized)

	empty, err := network.New(0)
	require.NoError(t, err)
	assert.ErrorIs(t, bp.Initialize(empty), percolation.ErrEmptyNetwork)
	assert.ErrorIs(t, bp.Initialize(nil), percolation.ErrEmptyNetwork)

	nw, _ := pathNetwork(t)
	require.NoError(t, bp.Initialize(nw))
	_, err = bp.Run(context.Background(), nil)
	assert.ErrorIs(t, err, percolation.ErrNeedRandSource)

	bp.Release()
	_, err = bp.Run(context.Background(), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, percolation.ErrNotInitialized)
}

func TestBond_Cancelled(t *testing.T) {
	nw, perm := pathNetwork(t)
	bp, err := percolation.NewBondPercolation(percolation.WithSamplePoints(0.5, 1))
	require.NoError(t, err)
	require.NoError(t, bp.Initialize(nw))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bp.RunPermutation(ctx, perm)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBond_AgreesWithBFS compares every sampled GCC with a breadth-first
// census of the edges occupied so far.
func TestBond_AgreesWithBFS(t *testing.T) {
	nw := randomNetwork(t, 250, 0.012, 17)
	perm, err := nw.Permutation(rand.New(rand.NewSource(6)))
	require.NoError(t, err)

	for _, policy := range []percolation.Policy{percolation.AtOrAfter, percolation.AtOrBefore} {
		bp, err := percolation.NewBondPercolation(percolation.WithSampleCount(33), percolation.WithPolicy(policy))
		require.NoError(t, err)
		require.NoError(t, bp.Initialize(nw))
		ss, err := bp.RunPermutation(context.Background(), perm)
		require.NoError(t, err)

		for _, s := range ss {
			sizes, err := network.ComponentSizes(nw.Order(), perm[:s.Occupied])
			require.NoError(t, err)
			assert.Equal(t, sizes[0], s.GCC, "%v p=%g", policy, s.P)
		}
	}
}

// TestBond_PointsBeforeFirstEdge: under AtOrBefore a point below 1/M is
// recorded with nothing occupied; under AtOrAfter it waits for the first edge.
func TestBond_PointsBeforeFirstEdge(t *testing.T) {
	nw, perm := pathNetwork(t)
	cases := []struct {
		policy percolation.Policy
		want   []percolation.Sample
	}{
		{percolation.AtOrBefore, []percolation.Sample{
			{P: 0.2, N: 4, M: 3, Occupied: 0, GCC: 1},
			{P: 1, N: 4, M: 3, Occupied: 3, GCC: 4},
		}},
		{percolation.AtOrAfter, []percolation.Sample{
			{P: 0.2, N: 4, M: 3, Occupied: 1, GCC: 2},
			{P: 1, N: 4, M: 3, Occupied: 3, GCC: 4},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			bp, err := percolation.NewBondPercolation(
				percolation.WithSamplePoints(0.2, 1),
				percolation.WithPolicy(tc.policy))
			require.NoError(t, err)
			require.NoError(t, bp.Initialize(nw))

			got, err := bp.RunPermutation(context.Background(), perm)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
