// Package tabu implements the dual short-term tabu memory with adaptive
// tenures described in spec §4.4: two expiry arrays (re-add, remove) checked
// against a monotonically increasing iteration counter, with tenures
// recomputed from the current solution after every move attempt.
package tabu

import "math/rand"

// DualTabu tracks, per vertex, the iteration at which it again becomes
// eligible for re-addition (expireAdd) or removal (expireRemove).
type DualTabu struct {
	expireAdd    []int
	expireRemove []int
	iter         int
	tenureAdd    int // T_u
	tenureRemove int // T_v
}

// New creates a DualTabu for n vertices with the given initial tenures.
// Tenures are floored at 1, matching original_source/src/tabu.rs.
func New(n, initialTenureAdd, initialTenureRemove int) *DualTabu {
	return &DualTabu{
		expireAdd:    make([]int, n),
		expireRemove: make([]int, n),
		tenureAdd:    max(1, initialTenureAdd),
		tenureRemove: max(1, initialTenureRemove),
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IsTabuAdd reports whether v is currently forbidden from being re-added.
func (t *DualTabu) IsTabuAdd(v int) bool { return t.expireAdd[v] > t.iter }

// IsTabuRemove reports whether v is currently forbidden from being removed.
func (t *DualTabu) IsTabuRemove(v int) bool { return t.expireRemove[v] > t.iter }

// ForbidAdd stamps v as tabu-for-add until iter + T_u.
func (t *DualTabu) ForbidAdd(v int) { t.expireAdd[v] = t.iter + t.tenureAdd }

// ForbidRemove stamps v as tabu-for-remove until iter + T_v.
func (t *DualTabu) ForbidRemove(v int) { t.expireRemove[v] = t.iter + t.tenureRemove }

// Step increments the global iteration counter. Must be called exactly once
// per move attempt, whether or not a swap occurred, so expiries decay
// monotonically.
func (t *DualTabu) Step() { t.iter++ }

// Iter returns the current iteration counter (read-only; exposed for
// diagnostics and tests).
func (t *DualTabu) Iter() int { return t.iter }

// Reset zeroes both expiry arrays. Tenures are left untouched.
func (t *DualTabu) Reset() {
	for i := range t.expireAdd {
		t.expireAdd[i] = 0
	}
	for i := range t.expireRemove {
		t.expireRemove[i] = 0
	}
}

// UpdateTenures recomputes T_u, T_v from the current solution per spec §4.4:
//
//	maxEdges = |S|(|S|-1)/2
//	needed   = ceil(gamma * maxEdges)
//	L        = min(max(0, needed - |E(S)|), 10)
//	c        = max(|S|/40, 6)
//	T_u      = max(1, L + RandInt[0, c])
//	T_v      = max(1, floor(0.6*L) + RandInt[0, floor(0.6*c)])
//
// When |S| < 2, tenures collapse to 1.
func (t *DualTabu) UpdateTenures(size, edges int, gamma float64, rng *rand.Rand) {
	if size < 2 {
		t.tenureAdd = 1
		t.tenureRemove = 1
		return
	}

	maxEdges := size * (size - 1) / 2
	needed := ceilInt(gamma * float64(maxEdges))
	deficit := needed - edges
	if deficit < 0 {
		deficit = 0
	}
	if deficit > 10 {
		deficit = 10
	}
	l := deficit

	c := size / 40
	if c < 6 {
		c = 6
	}

	t.tenureAdd = max(1, l+randIntInclusive(rng, c))

	c6 := int(0.6 * float64(c))
	t.tenureRemove = max(1, int(0.6*float64(l))+randIntInclusive(rng, c6))
}

// randIntInclusive draws a uniform integer in [0, n] inclusive. n <= 0
// always yields 0 without consuming the RNG stream; n == 1 draws 0 or 1.
func randIntInclusive(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n + 1)
}

func ceilInt(x float64) int {
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}
