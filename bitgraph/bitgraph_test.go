package bitgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqclique/gqc/bitgraph"
)

func TestFromEdges_BuildsSymmetricAdjacency(t *testing.T) {
	g, err := bitgraph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
}

func TestFromEdges_DuplicateEdgeIsIdempotent(t *testing.T) {
	g, err := bitgraph.FromEdges(3, [][2]int{{0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, 1, g.M())
	assert.Equal(t, 1, g.Degree(0))
}

func TestFromEdges_RejectsSelfLoop(t *testing.T) {
	_, err := bitgraph.FromEdges(3, [][2]int{{1, 1}})
	require.Error(t, err)
}

func TestFromEdges_RejectsOutOfRange(t *testing.T) {
	_, err := bitgraph.FromEdges(3, [][2]int{{0, 5}})
	require.Error(t, err)
}

func TestAndCount_MatchesManualIntersection(t *testing.T) {
	// Triangle 0-1-2, isolated 3.
	g, err := bitgraph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	members := make([]uint64, g.Words())
	members[0] |= 1 << 0
	members[0] |= 1 << 1

	assert.Equal(t, 2, g.AndCount(2, members)) // vertex 2 sees {0,1} both in members
	assert.Equal(t, 0, g.AndCount(3, members))
}

func TestDegreeSequenceDesc_IsSortedDescending(t *testing.T) {
	g, err := bitgraph.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	seq := g.DegreeSequenceDesc()
	require.Len(t, seq, 4)
	for i := 1; i < len(seq); i++ {
		assert.GreaterOrEqual(t, seq[i-1], seq[i])
	}
	assert.Equal(t, 3, seq[0])
}
