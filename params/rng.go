package params

import "math/rand"

// NewRNG returns a deterministic *rand.Rand for the given seed, treating
// seed == 0 as a valid, fixed seed (unlike
// github.com/katalvlaran/lvlath/tsp's rngFromSeed, which substitutes a
// constant default for zero — this module's Params.Seed is itself the
// documented "0 ⇒ deterministic" default, so no further substitution is
// needed).
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer, grounded directly on
// github.com/katalvlaran/lvlath/tsp/rng.go's deriveSeed. Used to hand each
// independent run (solver.SolveFixedK's `runs` loop) and each parallel MCTS
// worker a decorrelated, reproducible-given-its-own-seed stream.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base
// seed and a stream identifier.
func DeriveRNG(baseSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(baseSeed, stream)))
}
