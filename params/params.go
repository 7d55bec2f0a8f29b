// Package params bundles the immutable tunable configuration shared by
// every solver entry point, following the shape of
// github.com/katalvlaran/lvlath/tsp's Options/DefaultOptions pair: a flat
// struct of knobs plus one default constructor, copied and overridden by
// value at call sites rather than built with functional options.
package params

import "time"

// Params holds every tunable control surface for the γ-quasi-clique
// solver, matching spec §6 one field at a time.
type Params struct {
	// Gamma is the target density threshold γ ∈ (0, 1].
	Gamma float64

	// StagnationIter (L) is the number of consecutive no-improvement move
	// attempts before a restart triggers diversification.
	StagnationIter int

	// MaxIter (It_max) bounds the total number of move attempts across all
	// restarts within one solve_fixed_k call.
	MaxIter int

	// TenureU, TenureV seed the initial dual-tabu tenures before the first
	// adaptive recomputation.
	TenureU int
	TenureV int

	// UseMCTS switches stagnation handling from the plain perturbation
	// coin-flip to MCTS-guided LNS.
	UseMCTS bool

	// MCTSBudget (B) is the number of simulations run per MCTS invocation.
	MCTSBudget int

	// MCTSExplorationC is the UCT exploration constant c.
	MCTSExplorationC float64

	// MCTSMaxDepth (D) bounds MCTS tree depth.
	MCTSMaxDepth int

	// MCTSWorkers, when > 1, splits the MCTS budget across independent
	// parallel trees merged after all complete (spec §4.8, §5). 0 or 1
	// means single-threaded, bit-reproducible MCTS.
	MCTSWorkers int

	// LNSRepairDepth (R_repair) bounds the mini local-search phase run
	// after LNS's greedy completion.
	LNSRepairDepth int

	// LNSRCLAlpha (α) parameterizes the randomized-greedy restricted
	// candidate list; 1.0 is pure greedy.
	LNSRCLAlpha float64

	// MaxTimeSeconds (T_max) bounds wall-clock time per solve call. Zero
	// means no deadline.
	MaxTimeSeconds float64

	// K is the fixed target size for solve_fixed_k. Unused by solve_max_k.
	K int

	// Runs is the number of independent driver invocations; the best
	// result across runs is returned.
	Runs int

	// Seed seeds the deterministic RNG. Distinct runs derive distinct,
	// reproducible sub-seeds from it (see DeriveSeed).
	Seed int64
}

// DefaultParams returns conservative, safe defaults mirroring
// original_source/src/params.rs's Default impl, adjusted to Go idiom.
func DefaultParams() Params {
	return Params{
		Gamma:             0.90,
		StagnationIter:    1000,
		MaxIter:           100_000_000,
		TenureU:           1,
		TenureV:           1,
		UseMCTS:           false,
		MCTSBudget:        100,
		MCTSExplorationC:  1.414,
		MCTSMaxDepth:      5,
		MCTSWorkers:       1,
		LNSRepairDepth:    10,
		LNSRCLAlpha:       1.0,
		MaxTimeSeconds:    0,
		K:                 0,
		Runs:              1,
		Seed:              0,
	}
}

// EnableMCTS mutates a copy of p to turn on MCTS-guided LNS diversification
// with the given knobs, mirroring original_source/src/params.rs's
// Params::enable_mcts convenience mutator. Returns the updated copy so
// callers can chain: p = p.EnableMCTS(...).
func (p Params) EnableMCTS(budget int, explorationC float64, maxDepth, repairDepth int) Params {
	p.UseMCTS = true
	p.MCTSBudget = budget
	p.MCTSExplorationC = explorationC
	p.MCTSMaxDepth = maxDepth
	p.LNSRepairDepth = repairDepth
	return p
}

// Deadline computes the wall-clock deadline for a solve call started at
// start, or the zero Time if MaxTimeSeconds is not set (no deadline).
func (p Params) Deadline(start time.Time) time.Time {
	if p.MaxTimeSeconds <= 0 {
		return time.Time{}
	}
	return start.Add(time.Duration(p.MaxTimeSeconds * float64(time.Second)))
}
