// Package freq implements the long-term frequency memory g(v) that steers
// restart seed selection and tie-breaks in the fixed-k driver (search
// package). Every membership mutation that should feed the long-term
// memory MUST go through AddCounted/RemoveCounted rather than calling
// Solution.Add/Remove directly.
package freq

import "github.com/gqclique/gqc/solution"

// Memory is the per-vertex long-term counter g, owned by the fixed-k driver
// and threaded by reference through every component that mutates S.
type Memory []int

// New allocates a zeroed Memory for n vertices.
func New(n int) Memory {
	return make(Memory, n)
}

// AddCounted adds v to sol, increments g[v], and resets the entire vector
// to zero if g[v] then exceeds the post-mutation |S|. The reset rule is
// deliberately coupled to the current solution size to encourage
// exploration proportionate to the search's working-set size.
func AddCounted(sol *solution.Solution, v int, g Memory) {
	sol.Add(v)
	bump(sol, v, g)
}

// RemoveCounted removes v from sol and applies the same counting/reset rule
// as AddCounted.
func RemoveCounted(sol *solution.Solution, v int, g Memory) {
	sol.Remove(v)
	bump(sol, v, g)
}

func bump(sol *solution.Solution, v int, g Memory) {
	g[v]++
	if g[v] > sol.Size() {
		for i := range g {
			g[i] = 0
		}
	}
}

// ArgMin returns the set of vertex indices attaining the minimum value in g.
// Used by the fixed-k driver to pick restart seeds.
func ArgMin(g Memory) []int {
	if len(g) == 0 {
		return nil
	}
	min := g[0]
	for _, v := range g {
		if v < min {
			min = v
		}
	}
	out := make([]int, 0)
	for v, count := range g {
		if count == min {
			out = append(out, v)
		}
	}
	return out
}
