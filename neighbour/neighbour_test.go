package neighbour_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqclique/gqc/bitgraph"
	"github.com/gqclique/gqc/freq"
	"github.com/gqclique/gqc/neighbour"
	"github.com/gqclique/gqc/solution"
	"github.com/gqclique/gqc/tabu"
)

// Two disjoint triangles: 0-1-2 and 3-4-5. A 3-set spanning both triangles
// (say {0,1,3}) has one internal edge (0-1) and should improve toward a
// single complete triangle under repeated swaps.
func twoTriangles(t *testing.T) *bitgraph.Graph {
	t.Helper()
	g, err := bitgraph.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	require.NoError(t, err)
	return g
}

func TestImproveOnce_StepAlwaysAdvancesIter(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	sol.Add(0)
	sol.Add(1)
	sol.Add(3)
	tb := tabu.New(g.N(), 1, 1)
	mem := freq.New(g.N())
	rng := rand.New(rand.NewSource(7))

	before := tb.Iter()
	neighbour.ImproveOnce(sol, tb, 0, mem, 1.0, rng)
	assert.Equal(t, before+1, tb.Iter())
}

func TestImproveOnce_EventuallyReachesACompleteTriangle(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	sol.Add(0)
	sol.Add(1)
	sol.Add(3)
	tb := tabu.New(g.N(), 1, 1)
	mem := freq.New(g.N())
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50 && sol.Density() < 1.0; i++ {
		neighbour.ImproveOnce(sol, tb, 1.0, mem, 1.0, rng)
	}
	assert.Equal(t, 3, sol.Size())
	assert.Equal(t, 3, sol.Edges())
	assert.Equal(t, 1.0, sol.Density())
}

func TestImproveOnce_NoSwapWhenFull(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	for v := 0; v < g.N(); v++ {
		sol.Add(v)
	}
	tb := tabu.New(g.N(), 1, 1)
	mem := freq.New(g.N())
	rng := rand.New(rand.NewSource(1))

	moved := neighbour.ImproveOnce(sol, tb, 0, mem, 1.0, rng)
	assert.False(t, moved)
	assert.Equal(t, g.N(), sol.Size())
}
