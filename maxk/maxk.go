// Package maxk implements the max-k escalator (spec §4, "max-k escalator
// with degree-prefix pruning"): starting from k=2, repeatedly invoke
// search.SolveFixedK for increasing k, pruned by a degree-prefix-sum upper
// bound on the edges any k-vertex subgraph could possibly contain, and
// stopping as soon as either a k fails or the bound proves every larger k
// infeasible.
package maxk

import (
	"math/rand"
	"time"

	"github.com/gqclique/gqc/bitgraph"
	"github.com/gqclique/gqc/params"
	"github.com/gqclique/gqc/search"
	"github.com/gqclique/gqc/solution"
)

// Result summarizes one solve_max_k call.
type Result struct {
	Best     *solution.Solution
	TimedOut bool
}

// SolveMaxK searches for the largest k such that g contains a γ-feasible
// k-vertex subset, tracking the best answer found by (size descending,
// density descending) and honoring p.Deadline across k-iterations and
// inside each search.SolveFixedK call.
func SolveMaxK(g *bitgraph.Graph, rng *rand.Rand, p params.Params) Result {
	n := g.N()
	best := solution.New(g)
	if n == 0 {
		return Result{Best: best}
	}

	deadline := p.Deadline(time.Now())
	hasDeadline := !deadline.IsZero()

	prefix := degreePrefixSums(g)

	for k := 2; k <= n; k++ {
		if hasDeadline && time.Now().After(deadline) {
			return Result{Best: best, TimedOut: true}
		}

		ubEdges := prefix[k] / 2
		neededEdges := ceilInt(p.Gamma * float64(k*(k-1)/2))
		if ubEdges < neededEdges {
			break
		}

		kParams := p
		if hasDeadline {
			kParams.MaxTimeSeconds = time.Until(deadline).Seconds()
			if kParams.MaxTimeSeconds <= 0 {
				return Result{Best: best, TimedOut: true}
			}
		}

		runResult := search.SolveFixedK(g, k, rng, kParams)
		if !runResult.Feasible {
			break
		}
		if betterThan(runResult.Best, best) {
			best = runResult.Best
		}
	}

	return Result{Best: best}
}

// betterThan orders candidates by (size descending, density descending),
// matching the tie-break spec §4 prescribes for tracking the best max-k
// answer across k-iterations.
func betterThan(candidate, incumbent *solution.Solution) bool {
	if candidate.Size() != incumbent.Size() {
		return candidate.Size() > incumbent.Size()
	}
	return candidate.Density() > incumbent.Density()
}

// degreePrefixSums returns prefix[k] = sum of the k largest vertex degrees,
// for k in [0, n]. prefix[k]/2 upper-bounds the edge count achievable by
// any k-vertex induced subgraph, since each of those edges counts toward
// the degree of both its endpoints.
func degreePrefixSums(g *bitgraph.Graph) []int {
	desc := g.DegreeSequenceDesc()
	prefix := make([]int, len(desc)+1)
	for i, d := range desc {
		prefix[i+1] = prefix[i] + d
	}
	return prefix
}

func ceilInt(x float64) int {
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}
