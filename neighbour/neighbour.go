// Package neighbour implements the one-swap intensification move (spec
// §4.5): on every call it either swaps some u ∈ S with some v ∉ S, or
// determines no swap is currently available, and in both cases advances the
// tabu clock and refreshes its adaptive tenures.
package neighbour

import (
	"math/rand"

	"github.com/gqclique/gqc/freq"
	"github.com/gqclique/gqc/solution"
	"github.com/gqclique/gqc/tabu"
)

// criticalDegrees computes min_in (minimum |row(u) ∩ S| over non-tabu-for-
// remove u ∈ S) and max_out (maximum |row(v) ∩ S| over non-tabu-for-add v
// ∉ S), per spec §4.5. ok is false when either side has no eligible
// vertex.
func criticalDegrees(sol *solution.Solution, tb *tabu.DualTabu) (minIn, maxOut int, ok bool) {
	n := sol.Graph().N()
	minIn = int(^uint(0) >> 1) // math.MaxInt
	maxOut = -1
	haveIn, haveOut := false, false

	sol.ForEachMember(func(u int) {
		if tb.IsTabuRemove(u) {
			return
		}
		d := sol.CountConnections(u)
		if d < minIn {
			minIn = d
		}
		haveIn = true
	})

	for v := 0; v < n; v++ {
		if sol.Contains(v) || tb.IsTabuAdd(v) {
			continue
		}
		d := sol.CountConnections(v)
		if d > maxOut {
			maxOut = d
		}
		haveOut = true
	}

	if !haveIn || !haveOut {
		return 0, 0, false
	}
	return minIn, maxOut, true
}

// criticalSets builds A (in-S, degree == minIn) and B (out-of-S,
// degree == maxOut). minIn/maxOut are computed by criticalDegrees over
// non-tabu vertices only, which is what keeps the threshold meaningful;
// A and B themselves are not re-filtered by tabu status here. Filtering
// them again would make every (u,v) ∈ A×B provably non-tabu (A already
// excludes tabu-for-remove u, B already excludes tabu-for-add v), which
// makes the tabuMove check in ImproveOnce permanently false and the
// aspiration branch dead code. Unfiltered, A also holds tabu-for-remove
// members whose degree equals minIn and B also holds tabu-for-add
// outsiders whose degree equals maxOut — it is these pairs the aspiration
// criterion exists to catch.
func criticalSets(sol *solution.Solution, minIn, maxOut int) (a, b []int) {
	n := sol.Graph().N()
	sol.ForEachMember(func(u int) {
		if sol.CountConnections(u) == minIn {
			a = append(a, u)
		}
	})
	for v := 0; v < n; v++ {
		if sol.Contains(v) {
			continue
		}
		if sol.CountConnections(v) == maxOut {
			b = append(b, v)
		}
	}
	return a, b
}

// swapCandidate records one (u,v) pair considered by ImproveOnce, plus its
// gain Δ(u,v).
type swapCandidate struct {
	u, v  int
	delta int
}

// ImproveOnce attempts a single intensification swap on sol. bestGlobalRho
// is the best-known global density, used by the aspiration criterion.
// freqMem and tb are updated in place. It returns whether a swap occurred.
//
// Step is always invoked exactly once, and tenures are always refreshed,
// regardless of whether a swap occurred — spec §4.5 ("Always call step()
// and update_tenures() after the attempt").
func ImproveOnce(sol *solution.Solution, tb *tabu.DualTabu, bestGlobalRho float64, freqMem freq.Memory, gamma float64, rng *rand.Rand) bool {
	defer func() {
		tb.Step()
		tb.UpdateTenures(sol.Size(), sol.Edges(), gamma, rng)
	}()

	g := sol.Graph()
	k := sol.Size()
	if k == 0 || k == g.N() {
		return false
	}

	minIn, maxOut, ok := criticalDegrees(sol, tb)
	if !ok {
		return false
	}
	a, b := criticalSets(sol, minIn, maxOut)
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	currentEdges := sol.Edges()

	var bestAllowed []swapCandidate
	var bestAspire []swapCandidate
	const negInf = -1 << 62
	bestAllowedDelta := negInf
	bestAspireDelta := negInf

	for _, u := range a {
		loss := sol.CountConnections(u)
		for _, v := range b {
			gain := sol.CountConnections(v)
			eUV := 0
			if g.HasEdge(u, v) {
				eUV = 1
			}
			delta := gain - loss - eUV
			tabuMove := tb.IsTabuAdd(v) || tb.IsTabuRemove(u)

			if !tabuMove {
				switch {
				case delta > bestAllowedDelta:
					bestAllowedDelta = delta
					bestAllowed = bestAllowed[:0]
					bestAllowed = append(bestAllowed, swapCandidate{u, v, delta})
				case delta == bestAllowedDelta:
					bestAllowed = append(bestAllowed, swapCandidate{u, v, delta})
				}
				continue
			}

			newEdges := currentEdges + delta
			newRho := solution.DensityOf(k, newEdges)
			if newRho > bestGlobalRho {
				switch {
				case delta > bestAspireDelta:
					bestAspireDelta = delta
					bestAspire = bestAspire[:0]
					bestAspire = append(bestAspire, swapCandidate{u, v, delta})
				case delta == bestAspireDelta:
					bestAspire = append(bestAspire, swapCandidate{u, v, delta})
				}
			}
		}
	}

	// Selection policy, in priority order: aspiration first (spec §4.5
	// lists aspiration as priority 1), then non-tabu Δ ≥ 0 tie-broken
	// uniformly at random, else no swap.
	if len(bestAspire) > 0 {
		chosen := bestAspire[rng.Intn(len(bestAspire))]
		commitSwap(sol, tb, freqMem, chosen.u, chosen.v)
		return true
	}
	if len(bestAllowed) > 0 && bestAllowedDelta >= 0 {
		chosen := bestAllowed[rng.Intn(len(bestAllowed))]
		commitSwap(sol, tb, freqMem, chosen.u, chosen.v)
		return true
	}
	return false
}

func commitSwap(sol *solution.Solution, tb *tabu.DualTabu, freqMem freq.Memory, u, v int) {
	freq.RemoveCounted(sol, u, freqMem)
	freq.AddCounted(sol, v, freqMem)
	tb.ForbidRemove(v)
	tb.ForbidAdd(u)
}
