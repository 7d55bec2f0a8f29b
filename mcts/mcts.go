// Package mcts implements the UCT tree search over removal sequences used
// as an alternative to plain perturbation at stagnation (spec §4.8). Each
// node represents a partial removal sequence from a fixed initial snapshot;
// rollout hands the resulting sequence to package lns for randomized-greedy
// repair, and the resulting density (with a feasibility bonus) is the
// reward backpropagated to the root.
package mcts

import (
	"math"
	"math/rand"
	"sort"

	"github.com/gqclique/gqc/lns"
	"github.com/gqclique/gqc/params"
	"github.com/gqclique/gqc/solution"
)

// node is one arena-indexed tree node. parent == -1 marks the root.
type node struct {
	parent        int
	children      map[int]int // removed-vertex -> child arena index
	visits        int
	totalReward   float64
	vertexRemoved int // meaningless at the root
	depth         int
}

// Tree is a UCT search tree over removal sequences rooted at a fixed
// solution snapshot. Not safe for concurrent use by multiple goroutines;
// when p.MCTSWorkers > 1, Run builds one Tree per worker, runs them one
// after another and merges them sequentially.
type Tree struct {
	nodes    []node
	snapshot *solution.Solution
	p        params.Params
}

// New creates a Tree rooted at a (defensively cloned) snapshot of sol.
func New(sol *solution.Solution, p params.Params) *Tree {
	return &Tree{
		nodes:    []node{{parent: -1, children: map[int]int{}}},
		snapshot: sol.Clone(),
		p:        p,
	}
}

// Run executes p.MCTSBudget simulations (or, when p.MCTSWorkers > 1, splits
// the budget across independent parallel trees with independent RNG
// streams and merges them into this tree) and returns the removal sequence
// extracted by always following the highest-average-reward child from the
// root.
func (t *Tree) Run(rng *rand.Rand) []int {
	if t.p.MCTSWorkers <= 1 {
		t.runSimulations(t.p.MCTSBudget, rng)
		return t.extractBestSequence()
	}
	return t.runParallel(rng)
}

func (t *Tree) runParallel(baseRNG *rand.Rand) []int {
	workers := t.p.MCTSWorkers
	perWorker := t.p.MCTSBudget / workers
	if perWorker == 0 {
		perWorker = 1
	}
	baseSeed := baseRNG.Int63()

	results := make([]*Tree, workers)
	for w := 0; w < workers; w++ {
		local := New(t.snapshot, t.p)
		localRNG := params.DeriveRNG(baseSeed, uint64(w))
		local.runSimulations(perWorker, localRNG)
		results[w] = local
	}
	for _, other := range results {
		t.mergeFrom(other)
	}
	return t.extractBestSequence()
}

func (t *Tree) runSimulations(budget int, rng *rand.Rand) {
	for i := 0; i < budget; i++ {
		leaf, path := t.selectFromRoot()
		newIdx := t.expand(leaf, path, rng)
		reward := t.rollout(newIdx, rng)
		t.backpropagate(newIdx, reward)
	}
}

// selectFromRoot descends via UCT from the root until it reaches a node
// with no children or at max depth, returning that node's index and the
// removal path collected along the way.
func (t *Tree) selectFromRoot() (int, []int) {
	cur := 0
	var path []int
	for len(t.nodes[cur].children) > 0 {
		parentVisits := t.nodes[cur].visits
		best := -1
		bestScore := math.Inf(-1)
		for _, v := range sortedChildKeys(t.nodes[cur].children) {
			childIdx := t.nodes[cur].children[v]
			score := t.uct(childIdx, parentVisits)
			if score > bestScore {
				bestScore = score
				best = childIdx
			}
		}
		path = append(path, t.nodes[best].vertexRemoved)
		cur = best
		if t.nodes[cur].depth >= t.p.MCTSMaxDepth {
			break
		}
	}
	return cur, path
}

// sortedChildKeys returns children's removed-vertex keys in ascending
// order, so argmax scans over them are independent of Go's randomized map
// iteration order — required for the single-thread bit-reproducibility
// guarantee of spec §5/§8.
func sortedChildKeys(children map[int]int) []int {
	keys := make([]int, 0, len(children))
	for v := range children {
		keys = append(keys, v)
	}
	sort.Ints(keys)
	return keys
}

func (t *Tree) uct(idx, parentVisits int) float64 {
	n := &t.nodes[idx]
	if n.visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.totalReward / float64(n.visits)
	exploration := t.p.MCTSExplorationC * math.Sqrt(math.Log(float64(parentVisits))/float64(n.visits))
	return exploitation + exploration
}

// expand reconstructs the partial solution at node idx (by removing path
// from the snapshot), forms the critical subset, and attaches one new
// child keyed by a uniformly chosen vertex from it. A node is only
// expanded once it has been visited at least once (the first rollout on a
// freshly selected leaf happens before it gets any children); expand
// returns idx unchanged when the node is still unvisited, at the depth
// cap, or has no expandable candidate.
func (t *Tree) expand(idx int, path []int, rng *rand.Rand) int {
	n := &t.nodes[idx]
	if n.visits == 0 || n.depth >= t.p.MCTSMaxDepth {
		return idx
	}

	partial := t.snapshot.Clone()
	for _, v := range path {
		partial.Remove(v)
	}
	if partial.Size() == 0 {
		return idx
	}

	threshold := int(t.p.Gamma * float64(partial.Size()-1))
	tried := t.nodes[idx].children

	var critical []int
	partial.ForEachMember(func(u int) {
		if _, done := tried[u]; done {
			return
		}
		if partial.CountConnections(u) <= threshold {
			critical = append(critical, u)
		}
	})
	if len(critical) == 0 {
		partial.ForEachMember(func(u int) {
			if _, done := tried[u]; !done {
				critical = append(critical, u)
			}
		})
	}
	if len(critical) == 0 {
		return idx
	}

	chosen := critical[rng.Intn(len(critical))]
	t.nodes = append(t.nodes, node{
		parent:        idx,
		children:      map[int]int{},
		vertexRemoved: chosen,
		depth:         t.nodes[idx].depth + 1,
	})
	newIdx := len(t.nodes) - 1
	t.nodes[idx].children[chosen] = newIdx
	return newIdx
}

// rollout reconstructs the removal path from the root to idx and invokes
// LNS repair; the reward is ρ(repaired), plus a +1.0 bonus if the repaired
// solution is γ-feasible (spec §4.8).
func (t *Tree) rollout(idx int, rng *rand.Rand) float64 {
	path := t.pathTo(idx)
	repaired := lns.Repair(t.snapshot, path, t.p.Gamma, t.p.LNSRCLAlpha, t.p.LNSRepairDepth, rng)

	rho := repaired.Density()
	if repaired.IsGammaFeasible(t.p.Gamma) {
		return 1.0 + rho
	}
	return rho
}

func (t *Tree) pathTo(idx int) []int {
	var rev []int
	for cur := idx; t.nodes[cur].parent != -1; cur = t.nodes[cur].parent {
		rev = append(rev, t.nodes[cur].vertexRemoved)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

func (t *Tree) backpropagate(idx int, reward float64) {
	for cur := idx; cur != -1; cur = t.nodes[cur].parent {
		t.nodes[cur].visits++
		t.nodes[cur].totalReward += reward
	}
}

// extractBestSequence descends from the root always choosing the child
// with the highest average reward (pure exploitation), collecting the
// removed-vertex keys along the way.
func (t *Tree) extractBestSequence() []int {
	var seq []int
	cur := 0
	for len(t.nodes[cur].children) > 0 {
		best := -1
		bestAvg := math.Inf(-1)
		for _, v := range sortedChildKeys(t.nodes[cur].children) {
			childIdx := t.nodes[cur].children[v]
			n := &t.nodes[childIdx]
			visits := n.visits
			if visits == 0 {
				visits = 1
			}
			avg := n.totalReward / float64(visits)
			if avg > bestAvg {
				bestAvg = avg
				best = childIdx
			}
		}
		seq = append(seq, t.nodes[best].vertexRemoved)
		cur = best
	}
	return seq
}

// mergeFrom merges other into t by DFS from both roots, pairing children by
// their removed-vertex key: matching children sum visits and rewards
// recursively, unmatched subtrees are deep-copied into t with parent and
// children re-linked (spec §4.8 "Optional parallelism").
func (t *Tree) mergeFrom(other *Tree) {
	if len(other.nodes) == 0 {
		return
	}
	t.mergeNode(0, other, 0)
}

func (t *Tree) mergeNode(selfIdx int, other *Tree, otherIdx int) {
	t.nodes[selfIdx].visits += other.nodes[otherIdx].visits
	t.nodes[selfIdx].totalReward += other.nodes[otherIdx].totalReward

	for vertex, otherChildIdx := range other.nodes[otherIdx].children {
		if selfChildIdx, ok := t.nodes[selfIdx].children[vertex]; ok {
			t.mergeNode(selfChildIdx, other, otherChildIdx)
			continue
		}
		newIdx := t.deepCopySubtree(selfIdx, other, otherChildIdx)
		t.nodes[selfIdx].children[vertex] = newIdx
	}
}

// deepCopySubtree copies other's subtree rooted at otherIdx into t,
// attaching it under newParent, and returns the new root index in t.
func (t *Tree) deepCopySubtree(newParent int, other *Tree, otherIdx int) int {
	src := other.nodes[otherIdx]
	t.nodes = append(t.nodes, node{
		parent:        newParent,
		children:      map[int]int{},
		visits:        src.visits,
		totalReward:   src.totalReward,
		vertexRemoved: src.vertexRemoved,
		depth:         t.nodes[newParent].depth + 1,
	})
	newIdx := len(t.nodes) - 1
	for vertex, otherChildIdx := range src.children {
		childNewIdx := t.deepCopySubtree(newIdx, other, otherChildIdx)
		t.nodes[newIdx].children[vertex] = childNewIdx
	}
	return newIdx
}
