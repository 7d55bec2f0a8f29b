package freq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqclique/gqc/bitgraph"
	"github.com/gqclique/gqc/freq"
	"github.com/gqclique/gqc/solution"
)

func TestAddRemoveCounted_RoundTripIncrementsByTwo(t *testing.T) {
	g, err := bitgraph.FromEdges(5, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	sol := solution.New(g)
	mem := freq.New(5)

	// Keep |S| comfortably above g[v] so no reset fires mid-test.
	sol.Add(3)
	sol.Add(4)

	sizeBefore, edgesBefore := sol.Size(), sol.Edges()
	freq.AddCounted(sol, 0, mem)
	freq.RemoveCounted(sol, 0, mem)

	assert.Equal(t, 2, mem[0])
	assert.Equal(t, sizeBefore, sol.Size())
	assert.Equal(t, edgesBefore, sol.Edges())
}

func TestAddCounted_ResetsWhenExceedsSize(t *testing.T) {
	g, err := bitgraph.FromEdges(3, nil)
	require.NoError(t, err)
	sol := solution.New(g)
	mem := freq.New(3)
	mem[0] = 5 // g[0] becomes 6 and exceeds |S|=1 after Add below

	freq.AddCounted(sol, 0, mem)

	for i, v := range mem {
		assert.Equalf(t, 0, v, "mem[%d] should have been reset", i)
	}
}

func TestArgMin_ReturnsAllMinimizers(t *testing.T) {
	mem := freq.Memory{3, 1, 1, 2}
	assert.ElementsMatch(t, []int{1, 2}, freq.ArgMin(mem))
}
