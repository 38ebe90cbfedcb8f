// Package rewrite implements component F: the NPN-class-indexed
// rewriting engine (spec §4.F). For every internal node, in topological
// order, it enumerates 4-feasible cuts, canonicalizes each cut's truth
// table, looks up the matching library class, and — if any of that
// class's precomputed blueprints would shrink the network — splices the
// best one in via package splice.
package rewrite

import (
	"errors"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/cut"
	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/errs"
	"github.com/katalvlaran/aigsynth/library"
	"github.com/katalvlaran/aigsynth/mffc"
	"github.com/katalvlaran/aigsynth/npn"
	"github.com/katalvlaran/aigsynth/splice"
)

var (
	errNVarsMaxMustBeFour    = errors.New("rewrite requires a 4-feasible cut config (CutCfg.NVarsMax == 4)")
	errMissingTablesOrForest = errors.New("rewrite requires both Tables and Forest")
)

// Config bundles the rewriter's tunables: the cut enumeration config it
// drives, the NPN tables and precomputed library it looks candidates up
// against, and whether a zero-gain match should still be committed
// (spec §4.F: "use-zero-cost replacements" toggle, off by default since
// a zero-gain splice only churns node ids for no structural benefit).
type Config struct {
	CutCfg    cut.Config
	Tables    *npn.Tables
	Forest    *library.Forest
	FUseZeros bool
}

// Stats summarizes one Rewrite pass (spec §4.F step 5's per-pass
// bookkeeping, plus the cut manager's own limit-hit counter).
type Stats struct {
	NodesVisited   int
	NodesRewritten int
	NodesSaved     int // sum of (MFFC size - new nodes added) over every committed rewrite
	LimitHits      int
}

// Rewrite runs one pass of the rewriting engine over net, mutating it in
// place. Nodes are visited in topological order (fanins before users) as
// produced before the pass begins; a node later freed by an earlier
// commit in the same pass is simply skipped when its turn comes (spec
// §4.F: the engine neither recomputes cuts for freshly spliced-in nodes
// nor re-derives cuts invalidated elsewhere in the same pass — leaves of
// an already-computed cut remain functionally valid for as long as they
// exist, since a commit preserves the exact function of whatever it
// replaces).
func Rewrite(net *aig.Network, cfg Config) (Stats, error) {
	if cfg.CutCfg.NVarsMax != 4 {
		return Stats{}, errs.Config("rewrite.Rewrite", errNVarsMaxMustBeFour)
	}
	if cfg.Tables == nil || cfg.Forest == nil {
		return Stats{}, errs.Config("rewrite.Rewrite", errMissingTablesOrForest)
	}

	mgr := cut.NewManager(net, cfg.CutCfg)
	order := net.CollectInternal()

	// Compute needs both fanins' cut lists, so the constant node and the
	// PIs get their trivial cuts before the first AND.
	for _, id := range append([]uint32{0}, net.PIs()...) {
		if _, err := mgr.Compute(id); err != nil {
			return Stats{}, err
		}
	}
	for _, id := range order {
		if _, err := mgr.Compute(id); err != nil {
			return Stats{}, err
		}
	}

	var stats Stats
	for _, id := range order {
		if net.Node(id) == nil {
			continue // freed by an earlier commit this same pass
		}
		stats.NodesVisited++

		best := bestCandidate(net, mgr.Cuts(id), cfg)
		if best == nil {
			continue
		}

		err := splice.GraphUpdateNetwork(net, id, best.graph, best.leafEdges, best.travID, best.outputCompl)
		if err != nil {
			return stats, err
		}
		stats.NodesRewritten++
		stats.NodesSaved += best.gain
	}
	stats.LimitHits = mgr.LimitHits()

	return stats, nil
}

// match is one fully-resolved rewrite candidate: a specific library
// blueprint bound to a specific cut's (permuted, negated) leaves.
type match struct {
	graph       *dgraph.Graph
	leafEdges   []aig.Edge
	travID      uint32
	gain        int
	outputCompl bool
}

// bestCandidate scans every 4-leaf cut of id and every library member of
// the matching NPN class, returning the single highest-gain match across
// all of them, or nil if none would shrink the network (spec §4.F steps
// 1-5).
func bestCandidate(net *aig.Network, cuts []*cut.Cut, cfg Config) *match {
	var best *match

	for _, c := range cuts {
		if len(c.Leaves) < 4 {
			continue
		}
		if !leavesAlive(net, c.Leaves) {
			continue
		}

		tv := uint16(c.Truth.Words[0])
		perm := npn.Perm(cfg.Tables.Perms[tv])
		phase := cfg.Tables.Phases[tv]
		classID := cfg.Tables.Classes[tv]

		candidateFanins, ok := bindFanins(net, c.Leaves, perm, phase)
		if !ok {
			continue
		}
		if countSingleFanout(net, candidateFanins) > 2 {
			continue
		}

		nNodesSaved, travID := mffc.Label(net, c.Root, c.Leaves)
		outputCompl := (phase>>4)&1 == 1

		for _, member := range cfg.Forest.Members(classID) {
			n := member.Graph.NLeaves
			if n > len(candidateFanins) {
				continue
			}
			leafEdges := candidateFanins[:n]

			nNodesAdded := splice.GraphToNetworkCount(net, member.Graph, leafEdges, travID, nNodesSaved)
			if nNodesAdded < 0 {
				continue
			}

			gain := nNodesSaved - nNodesAdded
			if best == nil || gain > best.gain {
				best = &match{
					graph:       member.Graph,
					leafEdges:   append([]aig.Edge(nil), leafEdges...),
					travID:      travID,
					gain:        gain,
					outputCompl: outputCompl,
				}
			}
		}
	}

	if best == nil {
		return nil
	}
	if best.gain == 0 && !cfg.FUseZeros {
		return nil
	}
	return best
}

// bindFanins resolves a cut's leaves into the library blueprint's
// expected input order: leaf perm[i] supplies canonical input i,
// negated per the corresponding bit of phase (spec §4.F step 2,
// derived from how npn.Build's permuteVars/negateInputs compose: the
// canonical function equals the cut's own function evaluated at
// x_i = leaf_{perm[i]} XOR phase_i).
func bindFanins(net *aig.Network, leaves []uint32, perm [4]int, phase uint8) ([]aig.Edge, bool) {
	fanins := make([]aig.Edge, 4)
	for i := 0; i < 4; i++ {
		leaf := leaves[perm[i]]
		if net.Node(leaf) == nil {
			return nil, false
		}
		e := aig.Edge{Node: leaf}
		if (phase>>uint(i))&1 == 1 {
			e = e.Not()
		}
		fanins[i] = e
	}
	return fanins, true
}

// countSingleFanout counts how many of fanins drive exactly one user —
// spec §4.F's heuristic guard against replacements that would only
// relocate, not reduce, sharing ("reject cuts with more than two
// single-fanout leaves").
func countSingleFanout(net *aig.Network, fanins []aig.Edge) int {
	count := 0
	for _, e := range fanins {
		if nd := net.Node(e.Node); nd != nil && nd.FanoutCount() == 1 {
			count++
		}
	}
	return count
}

// leavesAlive reports whether every one of a previously-enumerated cut's
// leaves still exists in net. A cut computed earlier in the same pass
// remains functionally valid even after unrelated commits — splice
// preserves the exact function of whatever it replaces — but a leaf can
// still have been dereferenced and freed outright if it was itself
// absorbed into some other commit's MFFC.
func leavesAlive(net *aig.Network, leaves []uint32) bool {
	for _, l := range leaves {
		if net.Node(l) == nil {
			return false
		}
	}
	return true
}
