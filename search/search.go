// Package search implements the multi-start fixed-k tabu search driver
// (spec §4.9, "solve_fixed_k"): construct an initial candidate of size k,
// locally intensify it with package neighbour until stagnation, diversify
// (either MCTS-guided LNS or the heavy/light coin flip from package
// diversify), and repeat restarts until a feasible solution is found, the
// move budget is exhausted, or the deadline passes.
package search

import (
	"math/rand"
	"time"

	"github.com/gqclique/gqc/bitgraph"
	"github.com/gqclique/gqc/diversify"
	"github.com/gqclique/gqc/freq"
	"github.com/gqclique/gqc/lns"
	"github.com/gqclique/gqc/mcts"
	"github.com/gqclique/gqc/neighbour"
	"github.com/gqclique/gqc/params"
	"github.com/gqclique/gqc/solution"
	"github.com/gqclique/gqc/tabu"
)

// Result summarizes one solve_fixed_k call.
type Result struct {
	Best     *solution.Solution
	TimedOut bool
	Feasible bool
}

// SolveFixedK searches for a γ-quasi-clique of exactly k vertices in g,
// returning the best candidate found across restarts. It returns early as
// soon as a run produces a feasible solution.
func SolveFixedK(g *bitgraph.Graph, k int, rng *rand.Rand, p params.Params) Result {
	if k <= 0 || k > g.N() {
		return Result{Best: solution.New(g)}
	}

	maxPossibleEdges := 0
	if k > 1 {
		maxPossibleEdges = k * (k - 1) / 2
	}
	neededEdges := ceilInt(p.Gamma * float64(maxPossibleEdges))
	if maxPossibleEdges < neededEdges {
		return Result{Best: solution.New(g)}
	}

	deadline := p.Deadline(time.Now())
	hasDeadline := !deadline.IsZero()

	freqMem := freq.New(g.N())
	bestGlobal := solution.New(g)
	bestGlobalRho := 0.0
	totalMoves := 0

	for totalMoves < p.MaxIter {
		if hasDeadline && time.Now().After(deadline) {
			return Result{Best: bestGlobal, TimedOut: true, Feasible: bestGlobal.IsGammaFeasible(p.Gamma)}
		}

		var cur *solution.Solution
		if bestGlobal.Size() == 0 {
			cur = greedyRandomK(g, k, freqMem, rng)
		} else {
			cur = seededGreedyK(g, k, freqMem, rng)
		}
		if cur.Size() == 0 {
			break // empty graph
		}

		tb := tabu.New(g.N(), p.TenureU, p.TenureV)
		tb.UpdateTenures(cur.Size(), cur.Edges(), p.Gamma, rng)

		bestRun := cur.Clone()
		stagnation := 0

		for stagnation < p.StagnationIter && totalMoves < p.MaxIter {
			if hasDeadline && time.Now().After(deadline) {
				return Result{Best: bestGlobal, TimedOut: true, Feasible: bestGlobal.IsGammaFeasible(p.Gamma)}
			}

			moved := neighbour.ImproveOnce(cur, tb, bestGlobalRho, freqMem, p.Gamma, rng)
			totalMoves++
			if moved {
				stagnation = 0
			} else {
				stagnation++
			}

			if cur.Density() > bestRun.Density() {
				bestRun = cur.Clone()
			}
			if bestRun.IsGammaFeasible(p.Gamma) {
				reinforce(freqMem, bestRun)
				if bestRun.Density() > bestGlobal.Density() {
					bestGlobal = bestRun
					bestGlobalRho = bestGlobal.Density()
				}
				return Result{Best: bestGlobal, Feasible: true}
			}

			if stagnation >= p.StagnationIter {
				if p.UseMCTS {
					tree := mcts.New(cur, p)
					removalSeq := tree.Run(rng)
					cur = lns.Repair(cur, removalSeq, p.Gamma, p.LNSRCLAlpha, p.LNSRepairDepth, rng)
				} else {
					pHeavy := diversify.HeavyPerturbationProbability(cur, p.Gamma)
					if rng.Float64() < pHeavy {
						diversify.Heavy(cur, tb, freqMem, p.Gamma, rng)
					} else {
						diversify.Light(cur, tb, freqMem, p.Gamma, rng)
					}
				}
				stagnation = 0
			}
		}

		if bestRun.Density() > bestGlobal.Density() {
			bestGlobal = bestRun
			bestGlobalRho = bestGlobal.Density()
		}

		// Elitist reinforcement: every member of this run's best solution
		// gets its frequency bumped. Restart seeds and low-frequency
		// tie-breaks favour the lowest g, so this steers later restarts
		// away from the vertices of this run's best solution.
		reinforce(freqMem, bestRun)
	}

	return Result{Best: bestGlobal, Feasible: bestGlobal.IsGammaFeasible(p.Gamma)}
}

func reinforce(freqMem freq.Memory, sol *solution.Solution) {
	sol.ForEachMember(func(v int) {
		freqMem[v]++
	})
}

// greedyRandomK builds an initial size-k candidate: start from a uniformly
// random vertex, then repeatedly add the outside vertex with the most
// connections into the current set (ties broken uniformly at random).
// Every membership change, including the seed, goes through
// freq.AddCounted so the long-term memory g sees the first restart too
// (spec §4.9 step 1, §3/C3).
func greedyRandomK(g *bitgraph.Graph, k int, freqMem freq.Memory, rng *rand.Rand) *solution.Solution {
	sol := solution.New(g)
	if g.N() == 0 {
		return sol
	}
	freq.AddCounted(sol, rng.Intn(g.N()), freqMem)

	for sol.Size() < k {
		if !addBestGainVertex(sol, freqMem, rng, false) {
			break
		}
	}
	return sol
}

// seededGreedyK seeds a restart from one of the least-used vertices (by
// freqMem), then completes it via the same greedy-gain rule as
// greedyRandomK, but with gain ties on subsequent restarts broken in favor
// of the lowest-g candidate rather than uniformly at random (spec §4.9
// step 1, "restart strategy").
func seededGreedyK(g *bitgraph.Graph, k int, freqMem freq.Memory, rng *rand.Rand) *solution.Solution {
	sol := solution.New(g)
	candidates := freq.ArgMin(freqMem)
	if len(candidates) == 0 {
		return sol
	}
	freq.AddCounted(sol, candidates[rng.Intn(len(candidates))], freqMem)

	for sol.Size() < k {
		if !addBestGainVertex(sol, freqMem, rng, true) {
			break
		}
	}
	return sol
}

// addBestGainVertex adds, to sol, the outside vertex with maximum
// connections into sol. Gain ties are broken uniformly at random, unless
// preferLowFreq is set, in which case ties are first narrowed to the
// candidates with the lowest freqMem value (the secondary tie-break
// reserved for subsequent-restart completions) and only then broken
// uniformly at random. Returns false if no outside vertex exists.
func addBestGainVertex(sol *solution.Solution, freqMem freq.Memory, rng *rand.Rand, preferLowFreq bool) bool {
	g := sol.Graph()
	n := g.N()
	bestGain := -1
	var candidates []int
	for v := 0; v < n; v++ {
		if sol.Contains(v) {
			continue
		}
		gain := sol.CountConnections(v)
		switch {
		case gain > bestGain:
			bestGain = gain
			candidates = candidates[:0]
			candidates = append(candidates, v)
		case gain == bestGain:
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	if preferLowFreq {
		minFreq := freqMem[candidates[0]]
		for _, v := range candidates[1:] {
			if freqMem[v] < minFreq {
				minFreq = freqMem[v]
			}
		}
		narrowed := candidates[:0]
		for _, v := range candidates {
			if freqMem[v] == minFreq {
				narrowed = append(narrowed, v)
			}
		}
		candidates = narrowed
	}
	freq.AddCounted(sol, candidates[rng.Intn(len(candidates))], freqMem)
	return true
}

func ceilInt(x float64) int {
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}
