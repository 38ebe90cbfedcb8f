package aig

import (
	"sync"
)

// Network is the arena that owns every AIG node. Node 0 is always the
// constant-1 node; a negated edge to node 0 represents constant-0, so no
// separate constant-0 node ever exists.
//
// muNodes guards the arena and structural-hash table; muPorts guards the
// PI/PO id lists. Splitting the locks mirrors core.Graph's muVert /
// muEdgeAdj split in katalvlaran/lvlath/core: traversals that only walk
// fanins never contend with the (rarer) PI/PO bookkeeping.
type Network struct {
	muNodes sync.RWMutex
	nodes   []*Node          // arena, indexed by id
	strash  map[uint64][]uint32 // hash(sorted fanin edges) -> candidate AND ids

	muPorts sync.RWMutex
	pis     []uint32
	pos     []uint32

	travCounter uint32
}

// NewNetwork constructs an empty network with only the constant-1 node.
func NewNetwork() *Network {
	n := &Network{
		nodes:  make([]*Node, 0, 64),
		strash: make(map[uint64][]uint32, 64),
	}
	c := &Node{ID: 0, Kind: KindConst1}
	n.nodes = append(n.nodes, c)
	return n
}

// Const1 returns the edge for logical constant-1.
func (n *Network) Const1() Edge { return Edge{Node: 0, Compl: false} }

// Const0 returns the edge for logical constant-0.
func (n *Network) Const0() Edge { return Edge{Node: 0, Compl: true} }

// NumNodes returns the size of the arena, including the constant node.
func (n *Network) NumNodes() int {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	return len(n.nodes)
}

// NumAnds returns the number of live AND nodes (property §8.4: node
// non-increase is measured on this count).
func (n *Network) NumAnds() int {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	count := 0
	for _, nd := range n.nodes {
		if nd != nil && nd.Kind == KindAnd {
			count++
		}
	}
	return count
}

// Node returns the arena entry for id, or nil if id is out of range or
// has been freed.
func (n *Network) Node(id uint32) *Node {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	return n.nodeLocked(id)
}

func (n *Network) nodeLocked(id uint32) *Node {
	if int(id) >= len(n.nodes) {
		return nil
	}
	return n.nodes[id]
}

// PIs and POs return copies of the primary-input / primary-output id
// lists, in creation order.
func (n *Network) PIs() []uint32 {
	n.muPorts.RLock()
	defer n.muPorts.RUnlock()
	out := make([]uint32, len(n.pis))
	copy(out, n.pis)
	return out
}

func (n *Network) POs() []uint32 {
	n.muPorts.RLock()
	defer n.muPorts.RUnlock()
	out := make([]uint32, len(n.pos))
	copy(out, n.pos)
	return out
}

// CreatePI allocates a new primary input, level 0.
func (n *Network) CreatePI() Edge {
	n.muNodes.Lock()
	id := uint32(len(n.nodes))
	n.nodes = append(n.nodes, &Node{ID: id, Kind: KindPI})
	n.muNodes.Unlock()

	n.muPorts.Lock()
	n.pis = append(n.pis, id)
	n.muPorts.Unlock()

	return Edge{Node: id}
}

// CreatePO allocates a new primary output driven by fanin.
func (n *Network) CreatePO(fanin Edge) (uint32, error) {
	n.muNodes.Lock()
	if int(fanin.Node) >= len(n.nodes) || n.nodes[fanin.Node] == nil {
		n.muNodes.Unlock()
		return 0, ErrDanglingFanin
	}
	id := uint32(len(n.nodes))
	n.nodes = append(n.nodes, &Node{ID: id, Kind: KindPO, Fanin0: fanin})
	n.addFanoutLocked(fanin.Node, id)
	n.muNodes.Unlock()

	n.muPorts.Lock()
	n.pos = append(n.pos, id)
	n.muPorts.Unlock()

	return id, nil
}

// SetPOFanin rewires an existing PO's fanin edge, fixing up fanout
// bookkeeping on both the old and new driver.
func (n *Network) SetPOFanin(po uint32, fanin Edge) error {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()

	node := n.nodeLocked(po)
	if node == nil || node.Kind != KindPO {
		return ErrNodeNotFound
	}
	if int(fanin.Node) >= len(n.nodes) || n.nodes[fanin.Node] == nil {
		return ErrDanglingFanin
	}
	n.removeFanoutLocked(node.Fanin0.Node, po)
	node.Fanin0 = fanin
	n.addFanoutLocked(fanin.Node, po)
	return nil
}

// And returns the edge for fanin0 ∧ fanin1, applying the standard AIG
// simplification rules and structural hashing (spec §3's "ANDs are
// uniquely identified modulo commutativity by the hash of their two
// edges and are interned in a structural hash table"). Grounded on the
// And() algebra of the gini logic.C circuit package (strash + constant
// folding over a sorted operand pair) adapted to the network's explicit
// Edge/fanout bookkeeping.
func (n *Network) And(a, b Edge) (Edge, error) {
	// Trivial algebraic simplifications, independent of the network.
	if a == b {
		return a, nil
	}
	if a.Node == b.Node && a.Compl != b.Compl {
		return n.Const0(), nil
	}
	if a == n.Const0() || b == n.Const0() {
		return n.Const0(), nil
	}
	if a == n.Const1() {
		return b, nil
	}
	if b == n.Const1() {
		return a, nil
	}

	// Canonical operand order: commutativity means (a,b) and (b,a) must
	// hash identically and must not create duplicate AND nodes.
	if edgeLess(b, a) {
		a, b = b, a
	}

	n.muNodes.Lock()
	defer n.muNodes.Unlock()

	if int(a.Node) >= len(n.nodes) || n.nodes[a.Node] == nil ||
		int(b.Node) >= len(n.nodes) || n.nodes[b.Node] == nil {
		return Edge{}, ErrDanglingFanin
	}

	h := structuralHash(a, b)
	for _, cand := range n.strash[h] {
		cn := n.nodes[cand]
		if cn == nil || cn.Kind != KindAnd {
			continue
		}
		if cn.Fanin0 == a && cn.Fanin1 == b {
			return Edge{Node: cand}, nil
		}
	}

	id := uint32(len(n.nodes))
	level := n.nodes[a.Node].Level + 1
	if bl := n.nodes[b.Node].Level + 1; bl > level {
		level = bl
	}
	node := &Node{ID: id, Kind: KindAnd, Fanin0: a, Fanin1: b, Level: level}
	n.nodes = append(n.nodes, node)
	n.strash[h] = append(n.strash[h], id)
	n.addFanoutLocked(a.Node, id)
	n.addFanoutLocked(b.Node, id)

	return Edge{Node: id}, nil
}

// LookupAnd returns the existing AND id for the (already-canonicalized)
// fanin pair (a, b) without creating a new node. ok is false if no such
// AND exists yet. Used by component H's graphToNetworkCount /
// graphUpdateNetwork to distinguish "free" equivalents from ones that
// must be created.
func (n *Network) LookupAnd(a, b Edge) (id uint32, ok bool) {
	if edgeLess(b, a) {
		a, b = b, a
	}
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	h := structuralHash(a, b)
	for _, cand := range n.strash[h] {
		cn := n.nodes[cand]
		if cn == nil || cn.Kind != KindAnd {
			continue
		}
		if cn.Fanin0 == a && cn.Fanin1 == b {
			return cand, true
		}
	}
	return 0, false
}

func edgeLess(a, b Edge) bool {
	if a.Node != b.Node {
		return a.Node < b.Node
	}
	return !a.Compl && b.Compl
}

// structuralHash hashes a sorted fanin pair. Callers must already have
// canonicalized (a, b) via edgeLess so that commuted operand orders hash
// identically.
func structuralHash(a, b Edge) uint64 {
	pack := func(e Edge) uint64 {
		v := uint64(e.Node) << 1
		if e.Compl {
			v |= 1
		}
		return v
	}
	x := pack(a)
	y := pack(b)
	// A simple odd-constant mix, in the spirit of gini's strashCode
	// (uint32((a<<13)*b)) but widened to 64 bits to keep large networks
	// from collapsing the hash space.
	h := x*0x9E3779B97F4A7C15 + y*0xC2B2AE3D27D4EB4F
	return h
}

func (n *Network) addFanoutLocked(target, user uint32) {
	t := n.nodes[target]
	t.fanoutRefs = append(t.fanoutRefs, user)
}

func (n *Network) removeFanoutLocked(target, user uint32) {
	t := n.nodes[target]
	for i, id := range t.fanoutRefs {
		if id == user {
			t.fanoutRefs[i] = t.fanoutRefs[len(t.fanoutRefs)-1]
			t.fanoutRefs = t.fanoutRefs[:len(t.fanoutRefs)-1]
			return
		}
	}
}

// Deref recursively removes node id's reference to its fanins when id's
// own fanout count has reached zero, freeing nodes whose fanout count
// drops to zero as a result. This is the arena's deferred-deletion path
// described in spec §3's Lifetimes paragraph. Never frees a PI or the
// constant node.
func (n *Network) Deref(id uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	n.derefLocked(id)
}

func (n *Network) derefLocked(id uint32) {
	node := n.nodeLocked(id)
	if node == nil || node.Kind != KindAnd {
		return
	}
	if len(node.fanoutRefs) > 0 {
		return
	}
	n.removeFanoutLocked(node.Fanin0.Node, id)
	n.removeFanoutLocked(node.Fanin1.Node, id)
	n.nodes[id] = nil
	n.derefLocked(node.Fanin0.Node)
	n.derefLocked(node.Fanin1.Node)
}

// Ref bumps target's fanout count by one without recording a real using
// edge, protecting it from Deref. Used by MFFC labeling to pin cut
// leaves before counting. Unref reverses it. These do not touch the
// structural-hash table: they exist purely as a temporary reference
// count adjustment (spec §4.B step 1/4).
func (n *Network) Ref(target uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	if t := n.nodeLocked(target); t != nil {
		t.fanoutRefs = append(t.fanoutRefs, target) // self-tagged pin, never matches a real user id removal path
	}
}

func (n *Network) Unref(target uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	n.removeFanoutLocked(target, target)
}

// SeverFanout removes one (user -> target) entry from target's fanout
// list without touching user's own Fanin fields, modelling "this
// particular edge has just been walked and severed" during MFFC's
// reference-counted descent (spec §4.B step 2). Paired with
// RestoreFanout so the whole labeling pass can be undone, leaving the
// network's observable fanout state unchanged once Label returns (the
// only durable mutation happens later, in splice.GraphUpdateNetwork).
func (n *Network) SeverFanout(user, target uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	n.removeFanoutLocked(target, user)
}

// RestoreFanout is the exact inverse of SeverFanout.
func (n *Network) RestoreFanout(user, target uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	n.addFanoutLocked(target, user)
}
