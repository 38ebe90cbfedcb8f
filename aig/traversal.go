package aig

// NextTravID bumps the network-wide traversal-id counter and returns the
// new value. Every logical traversal (DFS collection, cycle check, level
// recompute, MFFC labeling) claims a fresh id and marks the nodes it
// visits by setting Node.TravID to it, so "is this node current" is a
// single integer compare rather than a separate visited-set allocation.
func (n *Network) NextTravID() uint32 {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	n.travCounter++
	return n.travCounter
}

// Mark stamps node id with travID ("current").
func (n *Network) Mark(id, travID uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	if nd := n.nodeLocked(id); nd != nil {
		nd.TravID = travID
	}
}

// IsMarked reports whether node id already carries travID.
func (n *Network) IsMarked(id, travID uint32) bool {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	nd := n.nodeLocked(id)
	return nd != nil && nd.TravID == travID
}

// CollectInternal performs a plain topological DFS (spec §4.A) from every
// PO's fanin, returning the internal (AND) nodes reachable from any PO,
// in topological order (fanins before the node that uses them). PIs and
// the constant node are skipped, matching the reference DFS's
// "skips PI/const" rule.
func (n *Network) CollectInternal() []uint32 {
	travID := n.NextTravID()
	var order []uint32
	var visit func(id uint32)
	visit = func(id uint32) {
		node := n.Node(id)
		if node == nil || n.IsMarked(id, travID) {
			return
		}
		n.Mark(id, travID)
		if node.Kind != KindAnd {
			return
		}
		visit(node.Fanin0.Node)
		visit(node.Fanin1.Node)
		order = append(order, id)
	}
	for _, po := range n.POs() {
		node := n.Node(po)
		if node == nil {
			continue
		}
		visit(node.Fanin0.Node)
	}
	return order
}

// CollectDangling sweeps the arena for AND nodes not reached by the most
// recent CollectInternal pass (same travID scheme), catching logic that
// is live (fanout count > 0, e.g. wired to another AND) but not
// transitively driving any PO. Call immediately after CollectInternal so
// the travID argument is still current.
func (n *Network) CollectDangling(travID uint32) []uint32 {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	var dangling []uint32
	for _, nd := range n.nodes {
		if nd == nil || nd.Kind != KindAnd {
			continue
		}
		if nd.TravID != travID {
			dangling = append(dangling, nd.ID)
		}
	}
	return dangling
}
