// Package solution implements the mutable candidate subset S over a
// bitgraph.Graph: a membership bitset with cached size |S| and cached induced
// edge count |E(S)|, updated incrementally in O(n/64) per add/remove.
package solution

import (
	"math/bits"

	"github.com/gqclique/gqc/bitgraph"
)

// densityEpsilon is the fixed tolerance used by IsGammaFeasible, matching
// the ε = 1e-9 fixed in spec §3.
const densityEpsilon = 1e-9

// Solution is a mutable vertex subset S bound to one bitgraph.Graph.
type Solution struct {
	g         *bitgraph.Graph
	members   []uint64
	size      int
	edgeCount int
}

// New creates an empty Solution over g.
func New(g *bitgraph.Graph) *Solution {
	return &Solution{
		g:       g,
		members: make([]uint64, g.Words()),
	}
}

// Graph returns the borrowed Graph this Solution is defined over.
func (s *Solution) Graph() *bitgraph.Graph { return s.g }

// Size returns the cached |S|.
func (s *Solution) Size() int { return s.size }

// Edges returns the cached |E(S)|.
func (s *Solution) Edges() int { return s.edgeCount }

// Members returns a borrowed view of the membership bitset. Callers must
// not mutate it; use Add/Remove instead.
func (s *Solution) Members() []uint64 { return s.members }

// Contains reports whether v is currently in S.
func (s *Solution) Contains(v int) bool {
	return s.members[v/64]&(1<<uint(v%64)) != 0
}

// CountConnections returns |row(v) ∩ S|, the number of neighbors of v
// currently in S. This is the essential O(n/64) subroutine everything else
// is built from.
func (s *Solution) CountConnections(v int) int {
	return s.g.AndCount(v, s.members)
}

// Density returns ρ(S) = 2|E(S)| / (|S|(|S|-1)), or 0 when |S| < 2.
func (s *Solution) Density() float64 {
	return densityOf(s.size, s.edgeCount)
}

func densityOf(size, edges int) float64 {
	if size < 2 {
		return 0
	}
	return 2 * float64(edges) / float64(size*(size-1))
}

// IsGammaFeasible reports ρ(S) + ε ≥ γ.
func (s *Solution) IsGammaFeasible(gamma float64) bool {
	return s.Density()+densityEpsilon >= gamma
}

// Add inserts v into S, bumping the cached size and edge count by
// CountConnections(v). A no-op if v is already a member (this raw mutator,
// unlike the counted helpers in package freq, never touches frequency
// memory).
//
// Complexity: O(n/64).
func (s *Solution) Add(v int) {
	if s.Contains(v) {
		return
	}
	added := s.CountConnections(v)
	s.members[v/64] |= 1 << uint(v%64)
	s.size++
	s.edgeCount += added
}

// Remove deletes v from S, mirroring Add. A no-op if v is not a member.
//
// Complexity: O(n/64).
func (s *Solution) Remove(v int) {
	if !s.Contains(v) {
		return
	}
	removed := s.CountConnections(v)
	s.members[v/64] &^= 1 << uint(v%64)
	s.size--
	s.edgeCount -= removed
}

// Clone returns an independent deep copy bound to the same Graph.
func (s *Solution) Clone() *Solution {
	members := make([]uint64, len(s.members))
	copy(members, s.members)
	return &Solution{g: s.g, members: members, size: s.size, edgeCount: s.edgeCount}
}

// ForEachMember calls fn(v) for every v currently in S, in ascending order.
func (s *Solution) ForEachMember(fn func(v int)) {
	for word := 0; word < len(s.members); word++ {
		w := s.members[word]
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(word*64 + b)
			w &= w - 1
		}
	}
}

// MembersSlice returns the vertex indices currently in S as a freshly
// allocated slice, ordered ascending. Used by callers (snapshots, removal
// sequences) that need random access rather than a callback.
func (s *Solution) MembersSlice() []int {
	out := make([]int, 0, s.size)
	s.ForEachMember(func(v int) { out = append(out, v) })
	return out
}

// DensityOf computes ρ given a raw (size, edges) pair without requiring a
// Solution instance. Used by the aspiration criterion in package neighbour,
// which must evaluate a hypothetical post-swap density before committing to
// a move.
func DensityOf(size, edges int) float64 {
	return densityOf(size, edges)
}
