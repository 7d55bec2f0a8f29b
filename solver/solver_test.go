package solver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqclique/gqc/params"
	"github.com/gqclique/gqc/solver"
)

func twoTrianglesDimacs() string {
	return "p edge 6 6\ne 1 2\ne 2 3\ne 1 3\ne 4 5\ne 5 6\ne 4 6\n"
}

func TestLoadGraph_ParsesDimacsStream(t *testing.T) {
	g, err := solver.LoadGraph(strings.NewReader(twoTrianglesDimacs()))
	require.NoError(t, err)
	assert.Equal(t, 6, g.N())
	assert.Equal(t, 6, g.M())
}

func TestSolveFixedK_ReturnsFeasibleTriangle(t *testing.T) {
	g, err := solver.LoadGraph(strings.NewReader(twoTrianglesDimacs()))
	require.NoError(t, err)

	p := params.DefaultParams()
	p.Gamma = 1.0
	p.MaxIter = 2000
	p.StagnationIter = 50
	p.Seed = 7
	p.Runs = 2

	outcome := solver.SolveFixedK(g, 3, p)
	assert.True(t, outcome.Feasible)
	assert.Equal(t, 3, outcome.Size)
	assert.Equal(t, 3, outcome.Edges)
	assert.InDelta(t, 1.0, outcome.Density, 1e-9)
}

func TestSolveMaxK_FindsTriangleSize(t *testing.T) {
	g, err := solver.LoadGraph(strings.NewReader(twoTrianglesDimacs()))
	require.NoError(t, err)

	p := params.DefaultParams()
	p.Gamma = 1.0
	p.MaxIter = 2000
	p.StagnationIter = 50
	p.Seed = 11
	p.Runs = 1

	outcome := solver.SolveMaxK(g, p)
	assert.Equal(t, 3, outcome.Size)
	assert.True(t, outcome.Feasible)
}
