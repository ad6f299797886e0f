package workload_test

import (
	"testing"

	"github.com/katalvlaran/windowrpq/workload"
	"github.com/stretchr/testify/require"
)

func TestPathProducesNMinusOneEdges(t *testing.T) {
	tuples, err := workload.Path(5, workload.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, tuples, 4)
}

func TestPathTooFewVertices(t *testing.T) {
	_, err := workload.Path(1)
	require.ErrorIs(t, err, workload.ErrTooFewVertices)
}

func TestCycleProducesNEdgesAndClosesLoop(t *testing.T) {
	tuples, err := workload.Cycle(4, workload.WithSeed(2))
	require.NoError(t, err)
	require.Len(t, tuples, 4)
	require.Equal(t, tuples[0].Source, tuples[len(tuples)-1].Target)
}

func TestStarProducesHubEdges(t *testing.T) {
	tuples, err := workload.Star(4, workload.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, tuples, 3)
	for _, tup := range tuples[1:] {
		require.Equal(t, tuples[0].Source, tup.Source)
	}
}

func TestCompleteProducesAllOrderedPairs(t *testing.T) {
	tuples, err := workload.Complete(3, workload.WithSeed(4))
	require.NoError(t, err)
	require.Len(t, tuples, 6)
}

func TestBipartiteProducesLeftTimesRightEdges(t *testing.T) {
	tuples, err := workload.Bipartite(2, 3, workload.WithSeed(5))
	require.NoError(t, err)
	require.Len(t, tuples, 6)
}

func TestDeterministicGivenSameSeed(t *testing.T) {
	a, err := workload.Path(5, workload.WithSeed(42), workload.WithLabels("a", "b"))
	require.NoError(t, err)
	b, err := workload.Path(5, workload.WithSeed(42), workload.WithLabels("a", "b"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
