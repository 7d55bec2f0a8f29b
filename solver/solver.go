// Package solver exposes the two public entry points of this module,
// SolveFixedK and SolveMaxK, binding package dimacs (input), package params
// (configuration) and packages search/maxk (the actual metaheuristics).
// Both entry points implement the `runs` loop (spec §6): p.Runs independent
// restarts of the whole driver, each seeded from an independent,
// reproducible RNG stream derived from p.Seed, keeping the best result
// across runs.
package solver

import (
	"io"

	"github.com/gqclique/gqc/bitgraph"
	"github.com/gqclique/gqc/dimacs"
	"github.com/gqclique/gqc/maxk"
	"github.com/gqclique/gqc/params"
	"github.com/gqclique/gqc/search"
)

// Outcome is the public result shape returned by both entry points:
// solution size, induced edge count, resulting density, and whether the
// search was cut short by the deadline.
type Outcome struct {
	Size     int
	Edges    int
	Density  float64
	Feasible bool
	TimedOut bool
}

// LoadGraph parses a DIMACS .clq stream into a *bitgraph.Graph, the shared
// input type for both SolveFixedK and SolveMaxK.
func LoadGraph(r io.Reader) (*bitgraph.Graph, error) {
	return dimacs.Parse(r)
}

// SolveFixedK runs p.Runs independent solve_fixed_k restarts against g for
// the fixed target size k, returning the densest feasible (or, absent
// feasibility, densest overall) outcome found across runs.
func SolveFixedK(g *bitgraph.Graph, k int, p params.Params) Outcome {
	runs := p.Runs
	if runs < 1 {
		runs = 1
	}

	var best search.Result
	haveBest := false
	anyTimedOut := false

	for run := 0; run < runs; run++ {
		rng := params.DeriveRNG(p.Seed, uint64(run))
		result := search.SolveFixedK(g, k, rng, p)
		anyTimedOut = anyTimedOut || result.TimedOut

		if !haveBest || runImproves(result, best) {
			best = result
			haveBest = true
		}
	}

	return toOutcome(best.Best, best.Feasible, anyTimedOut)
}

// SolveMaxK runs p.Runs independent solve_max_k escalations against g,
// returning the outcome with (size descending, density descending)
// priority across runs.
func SolveMaxK(g *bitgraph.Graph, p params.Params) Outcome {
	runs := p.Runs
	if runs < 1 {
		runs = 1
	}

	var best maxk.Result
	haveBest := false
	anyTimedOut := false

	for run := 0; run < runs; run++ {
		rng := params.DeriveRNG(p.Seed, uint64(run))
		result := maxk.SolveMaxK(g, rng, p)
		anyTimedOut = anyTimedOut || result.TimedOut

		if !haveBest || betterMaxKResult(result, best) {
			best = result
			haveBest = true
		}
	}

	return toOutcome(best.Best, best.Best.IsGammaFeasible(p.Gamma), anyTimedOut)
}

func runImproves(candidate, incumbent search.Result) bool {
	if candidate.Feasible != incumbent.Feasible {
		return candidate.Feasible
	}
	return candidate.Best.Density() > incumbent.Best.Density()
}

func betterMaxKResult(candidate, incumbent maxk.Result) bool {
	if candidate.Best.Size() != incumbent.Best.Size() {
		return candidate.Best.Size() > incumbent.Best.Size()
	}
	return candidate.Best.Density() > incumbent.Best.Density()
}

func toOutcome(best interface {
	Size() int
	Edges() int
	Density() float64
}, feasible, timedOut bool) Outcome {
	return Outcome{
		Size:     best.Size(),
		Edges:    best.Edges(),
		Density:  best.Density(),
		Feasible: feasible,
		TimedOut: timedOut,
	}
}
