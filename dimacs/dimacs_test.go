package dimacs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqclique/gqc/dimacs"
)

func TestParse_BuildsGraphFromMinimalInput(t *testing.T) {
	input := "c a comment line\np edge 4 3\ne 1 2\ne 2 3\ne 3 4\n"
	g, err := dimacs.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
}

func TestParse_AcceptsLenientTagAndSkipsBlankLines(t *testing.T) {
	input := "\np col 3 2\n\ne 1 2\ne 2 3\n"
	g, err := dimacs.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 2, g.M())
}

func TestParse_DuplicateEdgeIsIdempotent(t *testing.T) {
	input := "p edge 2 2\ne 1 2\ne 2 1\n"
	g, err := dimacs.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, g.M())
}

func TestParse_RejectsEdgeBeforeProblemLine(t *testing.T) {
	input := "e 1 2\np edge 2 1\n"
	_, err := dimacs.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrEdgeBeforeProblemLine)
}

func TestParse_RejectsMissingProblemLine(t *testing.T) {
	input := "c only a comment\n"
	_, err := dimacs.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrMissingProblemLine)
}

func TestParse_RejectsNonIntegerToken(t *testing.T) {
	input := "p edge four 1\ne 1 2\n"
	_, err := dimacs.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, dimacs.ErrMalformedLine)
}

func TestParse_RejectsOutOfRangeEndpoint(t *testing.T) {
	input := "p edge 2 1\ne 1 5\n"
	_, err := dimacs.Parse(strings.NewReader(input))
	require.Error(t, err)
}

func TestParse_RejectsSelfLoop(t *testing.T) {
	input := "p edge 2 1\ne 1 1\n"
	_, err := dimacs.Parse(strings.NewReader(input))
	require.Error(t, err)
}
