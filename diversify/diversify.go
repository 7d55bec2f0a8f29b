// Package diversify implements the two adaptive perturbation shapes used by
// the fixed-k driver on stagnation (spec §4.6): a heavy perturbation that
// removes one random member and replaces it with an outsider below a
// density-derived threshold, and a light critical-swap that mirrors the
// neighbour package's critical-set construction but biases toward
// non-edges and ignores Δ. Both reset the tabu expiries (not the tenures)
// and then refresh tenures from the post-perturbation solution.
package diversify

import (
	"math/rand"

	"github.com/gqclique/gqc/freq"
	"github.com/gqclique/gqc/solution"
	"github.com/gqclique/gqc/tabu"
)

// HeavyPerturbationProbability computes p_heavy = min(0.1, (min(needed -
// |E(S)|, 10) + 2) / k), the edge-deficit-derived coin-flip probability
// used by the fixed-k driver at each stagnation point (spec §4.6).
func HeavyPerturbationProbability(sol *solution.Solution, gamma float64) float64 {
	k := sol.Size()
	if k == 0 {
		return 0
	}
	maxEdges := 0
	if k > 1 {
		maxEdges = k * (k - 1) / 2
	}
	needed := ceilInt(gamma * float64(maxEdges))
	deficit := needed - sol.Edges()
	if deficit < 0 {
		deficit = 0
	}
	if deficit > 10 {
		deficit = 10
	}
	p := (float64(deficit) + 2) / float64(k)
	if p > 0.1 {
		p = 0.1
	}
	return p
}

// Heavy performs the heavy perturbation: remove one random member, then add
// a randomly chosen outsider below the density-derived threshold h
// (falling back to the minimum-degree outsiders if none qualify).
func Heavy(sol *solution.Solution, tb *tabu.DualTabu, freqMem freq.Memory, gamma float64, rng *rand.Rand) {
	k := sol.Size()
	if k < 1 {
		return
	}
	members := sol.MembersSlice()
	u := members[rng.Intn(len(members))]
	freq.RemoveCounted(sol, u, freqMem)

	g := sol.Graph()
	n := g.N()
	dn := 0.0
	if n >= 2 {
		dn = 2 * float64(g.M()) / float64(n*(n-1))
	}
	var h int
	if dn <= 0.5 {
		h = floorInt(0.85 * gamma * float64(k))
	} else {
		h = floorInt(gamma * float64(k))
	}

	var candidates []int
	for v := 0; v < n; v++ {
		if sol.Contains(v) {
			continue
		}
		if sol.CountConnections(v) < h {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		minDeg := -1
		for v := 0; v < n; v++ {
			if sol.Contains(v) {
				continue
			}
			d := sol.CountConnections(v)
			if minDeg == -1 || d < minDeg {
				minDeg = d
			}
		}
		for v := 0; v < n; v++ {
			if sol.Contains(v) {
				continue
			}
			if sol.CountConnections(v) == minDeg {
				candidates = append(candidates, v)
			}
		}
	}

	if len(candidates) > 0 {
		v := candidates[rng.Intn(len(candidates))]
		freq.AddCounted(sol, v, freqMem)
	}

	tb.Reset()
	tb.UpdateTenures(sol.Size(), sol.Edges(), gamma, rng)
}

// Light performs the critical-swap light diversification: rebuild the
// critical sets A, B from the current tabu state, prefer a non-edge pair
// (u,v) ∈ A×B, and fall back to any pair in A×B if none is a non-edge.
//
// A, B are read from the tabu state as it stands *before* this call (spec
// §4.6: "re-compute A and B ... from the current tabu state"); the swap is
// then executed and stamped exactly as neighbour.ImproveOnce would. Only
// afterward is the tabu memory reset and its tenures refreshed, matching
// the shared closing step both perturbation shapes follow ("both reset the
// tabu expiries ... and then refresh tenures").
func Light(sol *solution.Solution, tb *tabu.DualTabu, freqMem freq.Memory, gamma float64, rng *rand.Rand) {
	g := sol.Graph()
	n := g.N()
	if sol.Size() == 0 {
		tb.Reset()
		tb.UpdateTenures(sol.Size(), sol.Edges(), gamma, rng)
		return
	}

	minIn := -1
	sol.ForEachMember(func(u int) {
		if tb.IsTabuRemove(u) {
			return
		}
		d := sol.CountConnections(u)
		if minIn == -1 || d < minIn {
			minIn = d
		}
	})
	maxOut := -1
	for v := 0; v < n; v++ {
		if sol.Contains(v) || tb.IsTabuAdd(v) {
			continue
		}
		d := sol.CountConnections(v)
		if d > maxOut {
			maxOut = d
		}
	}

	if minIn == -1 || maxOut == -1 {
		tb.Reset()
		tb.UpdateTenures(sol.Size(), sol.Edges(), gamma, rng)
		return
	}

	var a, b []int
	sol.ForEachMember(func(u int) {
		if tb.IsTabuRemove(u) {
			return
		}
		if sol.CountConnections(u) == minIn {
			a = append(a, u)
		}
	})
	for v := 0; v < n; v++ {
		if sol.Contains(v) || tb.IsTabuAdd(v) {
			continue
		}
		if sol.CountConnections(v) == maxOut {
			b = append(b, v)
		}
	}

	type pair struct{ u, v int }
	var nonEdges []pair
	var all []pair
	for _, u := range a {
		for _, v := range b {
			all = append(all, pair{u, v})
			if !g.HasEdge(u, v) {
				nonEdges = append(nonEdges, pair{u, v})
			}
		}
	}

	var chosen pair
	if len(nonEdges) > 0 {
		chosen = nonEdges[rng.Intn(len(nonEdges))]
	} else if len(all) > 0 {
		chosen = all[rng.Intn(len(all))]
	} else {
		tb.Reset()
		tb.UpdateTenures(sol.Size(), sol.Edges(), gamma, rng)
		return
	}

	freq.RemoveCounted(sol, chosen.u, freqMem)
	freq.AddCounted(sol, chosen.v, freqMem)
	tb.ForbidRemove(chosen.v)
	tb.ForbidAdd(chosen.u)

	tb.Reset()
	tb.UpdateTenures(sol.Size(), sol.Edges(), gamma, rng)
}

func floorInt(x float64) int {
	i := int(x)
	if float64(i) > x {
		i--
	}
	return i
}

func ceilInt(x float64) int {
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}
