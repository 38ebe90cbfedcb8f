package aig

// AndFresh creates a brand-new AND node for (a, b), applying the same
// trivial algebraic simplifications And does but deliberately skipping
// the structural-hash lookup that would otherwise reuse an existing
// equivalent node. package splice uses this when the only
// already-existing equivalent lies inside the MFFC about to be freed:
// spec §4.D's count-replacement step treats such a node as "would be
// destroyed", so the corresponding build step must not silently reuse
// it (doing so would save it from deref, diverging from what
// graphToNetworkCount already predicted and committed the caller to).
// The freshly created node is still registered into the structural-hash
// table, so later, unrelated And calls can find and reuse it normally.
func (n *Network) AndFresh(a, b Edge) (Edge, error) {
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
	if edgeLess(b, a) {
		a, b = b, a
	}

	n.muNodes.Lock()
	defer n.muNodes.Unlock()

	if int(a.Node) >= len(n.nodes) || n.nodes[a.Node] == nil ||
		int(b.Node) >= len(n.nodes) || n.nodes[b.Node] == nil {
		return Edge{}, ErrDanglingFanin
	}

	id := uint32(len(n.nodes))
	level := n.nodes[a.Node].Level + 1
	if bl := n.nodes[b.Node].Level + 1; bl > level {
		level = bl
	}
	node := &Node{ID: id, Kind: KindAnd, Fanin0: a, Fanin1: b, Level: level}
	n.nodes = append(n.nodes, node)
	h := structuralHash(a, b)
	n.strash[h] = append(n.strash[h], id)
	n.addFanoutLocked(a.Node, id)
	n.addFanoutLocked(b.Node, id)

	return Edge{Node: id}, nil
}

// Replace atomically redirects every edge currently pointing at oldRoot
// to newRoot, XOR-ing each using edge's own complement bit with
// newRoot.Compl so the function each user computes is unchanged except
// for the substitution itself, then dereferences oldRoot now that its
// fanout has dropped to zero — freeing whatever of its former MFFC
// isn't kept alive by the replacement subgraph's own reuse (spec §4.D
// "Build-and-splice": "atomically replace all fanout edges currently
// pointing at the old root with edges to the new root... freed MFFC
// nodes are recursively dereferenced"). This is the sole durable
// mutation a rewrite/refactor commit performs; oldRoot itself is never
// touched before this call.
func (n *Network) Replace(oldRoot uint32, newRoot Edge) error {
	n.muNodes.Lock()
	old := n.nodeLocked(oldRoot)
	if old == nil {
		n.muNodes.Unlock()
		return ErrNodeNotFound
	}
	seen := make(map[uint32]bool, len(old.fanoutRefs))
	var users []uint32
	for _, uid := range old.fanoutRefs {
		if !seen[uid] {
			seen[uid] = true
			users = append(users, uid)
		}
	}
	n.muNodes.Unlock()

	for _, uid := range users {
		n.muNodes.Lock()
		u := n.nodeLocked(uid)
		if u == nil {
			n.muNodes.Unlock()
			continue
		}
		switch u.Kind {
		case KindAnd:
			if u.Fanin0.Node == oldRoot {
				n.removeFanoutLocked(oldRoot, uid)
				u.Fanin0 = Edge{Node: newRoot.Node, Compl: u.Fanin0.Compl != newRoot.Compl}
				n.addFanoutLocked(newRoot.Node, uid)
			}
			if u.Fanin1.Node == oldRoot {
				n.removeFanoutLocked(oldRoot, uid)
				u.Fanin1 = Edge{Node: newRoot.Node, Compl: u.Fanin1.Compl != newRoot.Compl}
				n.addFanoutLocked(newRoot.Node, uid)
			}
			if edgeLess(u.Fanin1, u.Fanin0) {
				u.Fanin0, u.Fanin1 = u.Fanin1, u.Fanin0
			}
		case KindPO:
			if u.Fanin0.Node == oldRoot {
				n.removeFanoutLocked(oldRoot, uid)
				u.Fanin0 = Edge{Node: newRoot.Node, Compl: u.Fanin0.Compl != newRoot.Compl}
				n.addFanoutLocked(newRoot.Node, uid)
			}
		}
		n.muNodes.Unlock()
	}

	n.Deref(oldRoot)
	// The redirected AND users above may now carry a different fanin
	// pair than the one their original structural-hash entry was keyed
	// on; Cleanup rebuilds the table from the surviving nodes' current
	// fields so later And/LookupAnd calls see a consistent index.
	n.Cleanup()
	// Redirected users may sit at a different level now that their
	// fanin points at newRoot instead of oldRoot (spec §4.H: "fix
	// levels" is part of every commit).
	n.ComputeLevels()
	return nil
}
