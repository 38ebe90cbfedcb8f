package cut

import (
	"sort"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/truth"
)

// Config bundles the cut manager's tunables (spec §4.C "Parameters").
type Config struct {
	NVarsMax  int  // K, max leaves per cut, K ∈ [3, 16]
	NKeepMax  int  // cuts per node ceiling (excluding the trivial cut)
	FTruth    bool // compute truth tables
	FFilter   bool // run dominance filtering
	FSimul    bool // carry a simulation bit
	NIdsMax   int  // cut-id allocation ceiling, a resource-exhaustion guard
}

// DefaultConfig matches spec §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		NVarsMax: 4,
		NKeepMax: 250,
		FTruth:   true,
		FFilter:  true,
		FSimul:   false,
		NIdsMax:  1 << 20,
	}
}

// Manager owns the per-node cut lists of a single AIG pass. It is not
// safe for concurrent use by design (spec §5: per-call managers, no
// global state, single-threaded cooperative within a pass).
type Manager struct {
	cfg   Config
	net   *aig.Network
	lists map[uint32][]*Cut
	pool  *pool

	limitHits int // nodes whose cut count was capped by NKeepMax
}

// NewManager constructs a cut manager bound to net.
func NewManager(net *aig.Network, cfg Config) *Manager {
	return &Manager{
		cfg:   cfg,
		net:   net,
		lists: make(map[uint32][]*Cut),
		pool:  newPool(),
	}
}

// Cuts returns the current cut list for id, sorted ascending by leaf
// count so the trivial cut is head, or nil if the node has never been
// computed.
func (m *Manager) Cuts(id uint32) []*Cut {
	return m.lists[id]
}

// LimitHits returns the number of nodes whose cut enumeration stopped
// early because NKeepMax was reached (spec §4.C step 6's "limit-hit"
// statistic).
func (m *Manager) LimitHits() int {
	return m.limitHits
}

// trivialCut builds and registers the single-leaf cut of id.
func (m *Manager) trivialCut(id uint32) *Cut {
	c := m.pool.Get()
	c.Root = id
	c.Leaves = append(c.Leaves, id)
	c.Sig = signature(c.Leaves)
	if m.cfg.FTruth {
		c.Truth = truth.Var(1, 0)
	}
	return c
}

// Compute enumerates id's K-feasible cuts given the already-computed cut
// lists of its fanins (spec §4.C "Per-node computation"). PI and const
// nodes get only the trivial cut. Panics are never used; resource
// exhaustion (id allocation ceiling) surfaces via the returned error.
func (m *Manager) Compute(id uint32) ([]*Cut, error) {
	node := m.net.Node(id)
	if node == nil {
		return nil, aig.ErrNodeNotFound
	}
	if !node.IsAnd() {
		trivial := m.trivialCut(id)
		m.lists[id] = []*Cut{trivial}
		return m.lists[id], nil
	}

	la := m.lists[node.Fanin0.Node]
	lb := m.lists[node.Fanin1.Node]
	if la == nil || lb == nil {
		return nil, aig.ErrDanglingFanin
	}

	result := []*Cut{m.trivialCut(id)}
	capped := false

	for _, c0 := range la {
		for _, c1 := range lb {
			left, right := c0, c1
			if len(right.Leaves) > len(left.Leaves) {
				left, right = right, left
			}
			leaves, ok := Merge(left, right, m.cfg.NVarsMax)
			if !ok {
				continue
			}

			cand := m.pool.Get()
			cand.Root = id
			cand.Leaves = append(cand.Leaves, leaves...)
			cand.Sig = signature(leaves)

			if m.cfg.FTruth {
				cand.Truth = propagateTruth(node, c0, c1, cand)
			}

			if m.cfg.FFilter && m.dominated(result, cand) {
				m.pool.Put(cand)
				continue
			}

			if len(result) >= m.cfg.NKeepMax+1 {
				capped = true
				m.pool.Put(cand)
				continue
			}

			result = m.insertFiltered(result, cand)
		}
	}
	if capped {
		m.limitHits++
	}

	// The trivial cut sits at index 0 with a single leaf and no cut has
	// fewer, so the stable sort keeps it at the head.
	sort.SliceStable(result, func(i, j int) bool { return len(result[i].Leaves) < len(result[j].Leaves) })
	m.lists[id] = result
	return result, nil
}

// dominated reports whether cand is dominated by (or duplicates) any cut
// already in existing.
func (m *Manager) dominated(existing []*Cut, cand *Cut) bool {
	for _, e := range existing {
		if Dominates(e, cand) {
			return true
		}
	}
	return false
}

// insertFiltered appends cand, first dropping any existing cut that cand
// dominates (spec §4.C step 4: "else drop existing cuts that are
// supersets of m").
func (m *Manager) insertFiltered(existing []*Cut, cand *Cut) []*Cut {
	if !m.cfg.FFilter {
		return append(existing, cand)
	}
	kept := existing[:0:0]
	for _, e := range existing {
		if e.IsTrivial() || !Dominates(cand, e) {
			kept = append(kept, e)
		} else {
			m.pool.Put(e)
		}
	}
	return append(kept, cand)
}

// propagateTruth computes the merged cut's truth table by stretching
// each fanin cut's function — compact over its own leaf count — into
// the merged cut's own (also compact) variable space via the stretching
// phase, negating per fanin complement bit, then ANDing (spec §4.C step
// 5). Cut truth tables are always compact (NVars == len(Leaves)), not
// padded to the manager's NVarsMax ceiling: the ceiling only bounds how
// many leaves a cut may hold, not the width of the stored table.
func propagateTruth(node *aig.Node, c0, c1, cand *Cut) *truth.Table {
	t0 := stretchTo(c0, cand, node.Fanin0.Compl)
	t1 := stretchTo(c1, cand, node.Fanin1.Compl)
	return truth.And(t0, t1)
}

func stretchTo(child, parent *Cut, compl bool) *truth.Table {
	positions := Phase(parent, child)
	stretched := truth.Stretch(child.Truth, len(parent.Leaves), positions)
	if compl {
		return truth.Not(stretched)
	}
	return stretched
}
