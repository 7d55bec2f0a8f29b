package diversify_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqclique/gqc/bitgraph"
	"github.com/gqclique/gqc/diversify"
	"github.com/gqclique/gqc/freq"
	"github.com/gqclique/gqc/solution"
	"github.com/gqclique/gqc/tabu"
)

func twoTriangles(t *testing.T) *bitgraph.Graph {
	t.Helper()
	g, err := bitgraph.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	require.NoError(t, err)
	return g
}

func TestHeavy_KeepsSizeConstant(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	sol.Add(0)
	sol.Add(1)
	sol.Add(3)
	tb := tabu.New(g.N(), 1, 1)
	mem := freq.New(g.N())
	rng := rand.New(rand.NewSource(5))

	sizeBefore := sol.Size()
	diversify.Heavy(sol, tb, mem, 0.9, rng)
	assert.Equal(t, sizeBefore, sol.Size())
}

func TestHeavy_ResetsTabuExpiries(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	sol.Add(0)
	sol.Add(1)
	sol.Add(3)
	tb := tabu.New(g.N(), 100, 100)
	tb.ForbidAdd(2)
	mem := freq.New(g.N())
	rng := rand.New(rand.NewSource(5))

	diversify.Heavy(sol, tb, mem, 0.9, rng)
	assert.False(t, tb.IsTabuAdd(2))
}

func TestLight_KeepsSizeConstant(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	sol.Add(0)
	sol.Add(1)
	sol.Add(3)
	tb := tabu.New(g.N(), 1, 1)
	mem := freq.New(g.N())
	rng := rand.New(rand.NewSource(9))

	sizeBefore := sol.Size()
	diversify.Light(sol, tb, mem, 0.9, rng)
	assert.Equal(t, sizeBefore, sol.Size())
}

func TestHeavyPerturbationProbability_CappedAtPointOne(t *testing.T) {
	g := twoTriangles(t)
	sol := solution.New(g)
	sol.Add(0)
	sol.Add(1)
	sol.Add(3)

	p := diversify.HeavyPerturbationProbability(sol, 1.0)
	assert.LessOrEqual(t, p, 0.1)
	assert.GreaterOrEqual(t, p, 0.0)
}
