package aig

// ComputeLevels recomputes every node's Level from scratch: 0 for
// PI/const, else 1 + max(fanin levels), memoized via the travID scheme
// to avoid reprocessing a node reachable through multiple paths (spec
// §4.A). Returns the network depth (max level over all nodes).
func (n *Network) ComputeLevels() uint32 {
	travID := n.NextTravID()
	var depth uint32

	var levelOf func(id uint32) uint32
	levelOf = func(id uint32) uint32 {
		node := n.Node(id)
		if node == nil {
			return 0
		}
		if node.Kind != KindAnd {
			n.setLevel(id, 0, travID)
			return 0
		}
		if n.IsMarked(id, travID) {
			return n.Node(id).Level
		}
		l0 := levelOf(node.Fanin0.Node)
		l1 := levelOf(node.Fanin1.Node)
		lvl := l0 + 1
		if l1+1 > lvl {
			lvl = l1 + 1
		}
		n.setLevel(id, lvl, travID)
		if lvl > depth {
			depth = lvl
		}
		return lvl
	}

	n.muNodes.RLock()
	ids := make([]uint32, 0, len(n.nodes))
	for _, nd := range n.nodes {
		if nd != nil {
			ids = append(ids, nd.ID)
		}
	}
	n.muNodes.RUnlock()

	for _, id := range ids {
		levelOf(id)
	}
	return depth
}

func (n *Network) setLevel(id, level, travID uint32) {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	if nd := n.nodeLocked(id); nd != nil {
		nd.Level = level
		nd.TravID = travID
	}
}

// Depth returns the current network depth without recomputing levels
// (assumes ComputeLevels or an incremental update has already run).
func (n *Network) Depth() uint32 {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	var depth uint32
	for _, nd := range n.nodes {
		if nd != nil && nd.Level > depth {
			depth = nd.Level
		}
	}
	return depth
}
