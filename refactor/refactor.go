// Package refactor implements component G: reconvergence-driven
// refactoring (spec §4.G). Unlike rewrite, which matches a node's cut
// against a precomputed library, refactor derives its replacement on
// the fly: grow a reconvergence cut, extract the node's true function
// over that cut's leaves, run it through ISOP and algebraic factoring
// (package sop), and splice the result in if it shrinks the network.
package refactor

import (
	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/cut"
	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/mffc"
	"github.com/katalvlaran/aigsynth/sop"
	"github.com/katalvlaran/aigsynth/splice"
	"github.com/katalvlaran/aigsynth/truth"
)

// maxFanout skips refactoring candidates whose current fanout already
// exceeds this (spec §4.G "Skip conditions": "fanout > 1000") — a node
// this widely shared is expensive to re-derive a cone for and unlikely
// to be the bottleneck a single-node replacement would relieve.
const maxFanout = 1000

// Config bundles the reconvergence-cut growth limits and the two
// replacement-acceptance toggles (spec §6's nNodeSizeMax/nConeSizeMax/
// fUseZeros/fUseDcs parameters).
type Config struct {
	NConeSizeMax int // leaf-count ceiling for the growing reconvergence cut
	NNodeSizeMax int // internal-node-count ceiling for the growing cone
	FUseZeros    bool
	// FUseDcs is accepted for parity with spec §6's documented parameter
	// set, but the don't-care-aware ISOP variant it would select is a
	// future hook (spec §9 Gotcha: "keep the parameter but note that
	// don't-care injection is a future hook") — it has no effect here.
	FUseDcs bool
}

// DefaultConfig matches spec §4.G's "leaves up to nNodeSizeMax, typically
// 10" guidance.
func DefaultConfig() Config {
	return Config{NConeSizeMax: 10, NNodeSizeMax: 10}
}

// Stats summarizes one Refactor pass.
type Stats struct {
	NodesVisited    int
	NodesRefactored int
	NodesSaved      int
}

// Refactor runs one pass over net, mutating it in place. Nodes are
// visited in the topological snapshot CollectInternal captures at pass
// start; a node already freed by an earlier commit this same pass is
// skipped, matching spec §4.G's "node already processed in this pass"
// skip condition (the snapshot itself already guarantees each original
// node is visited at most once; a freshly spliced-in replacement always
// gets a higher id than anything in the snapshot, so it is never
// revisited within the same pass).
func Refactor(net *aig.Network, cfg Config) (Stats, error) {
	order := net.CollectInternal()

	var stats Stats
	for _, id := range order {
		node := net.Node(id)
		if node == nil {
			continue
		}
		stats.NodesVisited++
		if node.FanoutCount() > maxFanout {
			continue
		}

		committed, gain, err := refactorNode(net, id, cfg)
		if err != nil {
			return stats, err
		}
		if committed {
			stats.NodesRefactored++
			stats.NodesSaved += gain
		}
	}

	return stats, nil
}

func refactorNode(net *aig.Network, id uint32, cfg Config) (bool, int, error) {
	leaves, _ := cut.Reconvergence(net, id, cfg.NConeSizeMax, cfg.NNodeSizeMax)
	leaves = withoutConstant(leaves)
	// A single-leaf cone is still refactored: after an earlier commit,
	// Replace can leave a node such as a∧¬a whose both fanins are one
	// leaf, and its constant function must still be spliced in.
	if len(leaves) == 0 {
		return false, 0, nil
	}

	nVars := len(leaves)
	leafIdx := make(map[uint32]int, nVars)
	for i, l := range leaves {
		leafIdx[l] = i
	}

	f := nodeTruth(net, id, leafIdx, nVars, make(map[uint32]*truth.Table))
	fNot := truth.Not(f)

	cover, polarity, err := sop.ISOP(f, fNot)
	if err != nil {
		return false, 0, err
	}

	g := dgraph.NewGraph()
	leafEdges := g.CreateLeaves(nVars)
	sop.Factor(g, cover, nVars, leafEdges)
	if !polarity {
		// g is a brand-new graph private to this call, not a shared
		// library blueprint, so mutating its root polarity in place is
		// safe (contrast splice.GraphUpdateNetwork's outputCompl, which
		// exists precisely because that caller's graph IS shared).
		g.Complement()
	}

	candidateFanins := make([]aig.Edge, nVars)
	for i, l := range leaves {
		candidateFanins[i] = aig.Edge{Node: l}
	}

	nNodesSaved, travID := mffc.Label(net, id, leaves)

	nNodesAdded := splice.GraphToNetworkCount(net, g, candidateFanins, travID, nNodesSaved)
	if nNodesAdded < 0 {
		return false, 0, nil
	}
	gain := nNodesSaved - nNodesAdded
	if gain == 0 && !cfg.FUseZeros {
		return false, 0, nil
	}

	if err := splice.GraphUpdateNetwork(net, id, g, candidateFanins, travID, false); err != nil {
		return false, 0, err
	}
	return true, gain, nil
}

// withoutConstant drops the constant node from a reconvergence cut's
// leaf set. Network.And's trivial simplifications never create an AND
// with a constant fanin, but Network.Replace redirects a node's users
// onto the constant when a cone is replaced by a constant, so a leaf
// set can contain node 0; evalEdge treats it as the constant instead.
func withoutConstant(leaves []uint32) []uint32 {
	out := leaves[:0:0]
	for _, l := range leaves {
		if l != 0 {
			out = append(out, l)
		}
	}
	return out
}

// nodeTruth computes id's truth table as a function of leafIdx's
// variables, walking the cone between them by plain recursive two-input
// AND composition with per-edge complement handling (spec §4.G step 2),
// memoized per node so a node reachable through both fanins of some
// ancestor is only evaluated once.
func nodeTruth(net *aig.Network, id uint32, leafIdx map[uint32]int, nVars int, memo map[uint32]*truth.Table) *truth.Table {
	if t, ok := memo[id]; ok {
		return t
	}
	node := net.Node(id)
	a := evalEdge(net, node.Fanin0, leafIdx, nVars, memo)
	b := evalEdge(net, node.Fanin1, leafIdx, nVars, memo)
	t := truth.And(a, b)
	memo[id] = t
	return t
}

func evalEdge(net *aig.Network, e aig.Edge, leafIdx map[uint32]int, nVars int, memo map[uint32]*truth.Table) *truth.Table {
	if e.Node == 0 {
		c := truth.Const(nVars, true)
		if e.Compl {
			return truth.Not(c)
		}
		return c
	}
	if idx, ok := leafIdx[e.Node]; ok {
		v := truth.Var(nVars, idx)
		if e.Compl {
			return truth.Not(v)
		}
		return v
	}
	t := nodeTruth(net, e.Node, leafIdx, nVars, memo)
	if e.Compl {
		return truth.Not(t)
	}
	return t
}
