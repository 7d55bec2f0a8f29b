package tabu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gqclique/gqc/tabu"
)

func TestForbidAndStep_ExpiryTracksIter(t *testing.T) {
	tb := tabu.New(5, 3, 2)
	tb.ForbidAdd(1)
	assert.True(t, tb.IsTabuAdd(1))
	assert.False(t, tb.IsTabuAdd(2))

	for i := 0; i < 3; i++ {
		tb.Step()
	}
	assert.False(t, tb.IsTabuAdd(1), "tenure 3 should have expired after 3 steps")
}

func TestReset_ClearsExpiriesKeepsTenure(t *testing.T) {
	tb := tabu.New(3, 4, 4)
	tb.ForbidAdd(0)
	tb.ForbidRemove(1)
	tb.Reset()

	assert.False(t, tb.IsTabuAdd(0))
	assert.False(t, tb.IsTabuRemove(1))
}

func TestUpdateTenures_CollapsesToOneBelowTwoMembers(t *testing.T) {
	tb := tabu.New(3, 5, 5)
	rng := rand.New(rand.NewSource(1))
	tb.UpdateTenures(1, 0, 0.9, rng)

	tb.ForbidAdd(0)
	assert.True(t, tb.IsTabuAdd(0))
	tb.Step()
	assert.False(t, tb.IsTabuAdd(0), "tenure should have collapsed to 1")
}

func TestUpdateTenures_IsDeterministicForFixedSeed(t *testing.T) {
	tb1 := tabu.New(50, 1, 1)
	tb2 := tabu.New(50, 1, 1)
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	tb1.UpdateTenures(20, 100, 0.9, r1)
	tb2.UpdateTenures(20, 100, 0.9, r2)

	tb1.ForbidAdd(0)
	tb2.ForbidAdd(0)
	assert.Equal(t, tb1.IsTabuAdd(0), tb2.IsTabuAdd(0))
}
