// Package gqc is a γ-quasi-clique search library: given an undirected
// graph, find a vertex subset S whose induced density ρ(S) = 2|E(S)| /
// (|S|(|S|−1)) meets or exceeds a target γ, either for an exact size k
// (SolveFixedK) or the largest size the graph admits (SolveMaxK).
//
// 🚀 What is gqc?
//
//	A tabu-search metaheuristic over a bit-packed adjacency substrate:
//
//	  • bitgraph  — immutable, word-parallel adjacency (the hot AND-popcount
//	                primitive every other package is built on)
//	  • solution  — mutable candidate subset with cached size/edge count
//	  • tabu + freq — dual short-term tabu memory with adaptive tenures,
//	                long-term frequency memory for restart seeding
//	  • neighbour + diversify — intensification swaps and perturbation
//	  • lns + mcts — large neighborhood search repair and UCT-guided
//	                destroy/repair diversification
//	  • search + maxk — the multi-start fixed-k driver and the degree-
//	                pruned max-k escalator built on top of it
//
// ✨ Design notes
//
//   - Deterministic   — every mode except parallel MCTS is bit-reproducible
//     for a fixed seed; one *rand.Rand is threaded through the whole call
//     tree, never reseeded ad hoc
//   - Pure Go          — no cgo, no hidden dependencies
//   - Immutable core   — Graph never mutates after construction, so it is
//     shared by borrow across restarts and MCTS workers without locking
//
// Package solver binds a DIMACS .clq parser (package dimacs), configuration
// (package params) and the drivers above into SolveFixedK/SolveMaxK, the
// two public entry points most callers want.
//
// Dive into DESIGN.md for the grounding ledger behind each package and the
// open design decisions made while building this out.
package gqc
