package aig

import "sort"

// Cleanup drops any fully-dereferenced (nil) arena slots and rebuilds the
// structural-hash table from the surviving ANDs, without renumbering. It
// is cheap and safe to call after any number of Deref calls; Renumber
// goes further and compacts ids.
func (n *Network) Cleanup() {
	n.muNodes.Lock()
	defer n.muNodes.Unlock()

	strash := make(map[uint64][]uint32, len(n.strash))
	for _, node := range n.nodes {
		if node == nil || node.Kind != KindAnd {
			continue
		}
		a, b := node.Fanin0, node.Fanin1
		if edgeLess(b, a) {
			a, b = b, a
		}
		h := structuralHash(a, b)
		strash[h] = append(strash[h], node.ID)
	}
	n.strash = strash
}

// Renumber reassigns node ids in DFS order (spec §4.H: "reassign ids in
// DFS order so fanout locality is restored"), then recomputes levels and
// rebuilds the structural-hash table. PIs keep their relative creation
// order immediately after the constant node; internal AND nodes follow
// in topological order (reachable-from-PO first, then any dangling AND);
// POs are renumbered last. Returns the old->new id map.
func (n *Network) Renumber() map[uint32]uint32 {
	travID := n.NextTravID()
	reachable := n.CollectInternal()
	dangling := n.CollectDangling(travID)
	order := append(reachable, dangling...)

	n.muNodes.Lock()
	oldNodes := n.nodes
	n.muNodes.Unlock()

	remap := make(map[uint32]uint32, len(oldNodes))
	remap[0] = 0 // constant node keeps id 0

	newNodes := make([]*Node, 0, len(oldNodes))
	newNodes = append(newNodes, &Node{ID: 0, Kind: KindConst1})

	n.muPorts.RLock()
	pis := append([]uint32(nil), n.pis...)
	pos := append([]uint32(nil), n.pos...)
	n.muPorts.RUnlock()

	for _, old := range pis {
		if oldNodes[old] == nil {
			continue
		}
		nid := uint32(len(newNodes))
		remap[old] = nid
		newNodes = append(newNodes, &Node{ID: nid, Kind: KindPI})
	}
	for _, old := range order {
		if _, ok := remap[old]; ok {
			continue
		}
		nid := uint32(len(newNodes))
		remap[old] = nid
		newNodes = append(newNodes, &Node{ID: nid, Kind: KindAnd})
	}
	for _, old := range pos {
		if oldNodes[old] == nil {
			continue
		}
		nid := uint32(len(newNodes))
		remap[old] = nid
		newNodes = append(newNodes, &Node{ID: nid, Kind: KindPO})
	}

	remapEdge := func(e Edge) Edge {
		return Edge{Node: remap[e.Node], Compl: e.Compl}
	}

	newPIs := make([]uint32, 0, len(pis))
	newPOs := make([]uint32, 0, len(pos))
	strash := make(map[uint64][]uint32, len(order))

	for old, nid := range remap {
		src := oldNodes[old]
		if src == nil {
			continue
		}
		dst := newNodes[nid]
		switch src.Kind {
		case KindPI:
			newPIs = append(newPIs, nid)
		case KindPO:
			dst.Fanin0 = remapEdge(src.Fanin0)
			newPOs = append(newPOs, nid)
		case KindAnd:
			a, b := remapEdge(src.Fanin0), remapEdge(src.Fanin1)
			if edgeLess(b, a) {
				a, b = b, a
			}
			dst.Fanin0, dst.Fanin1 = a, b
		}
	}

	sort.Slice(newPIs, func(i, j int) bool { return newPIs[i] < newPIs[j] })
	sort.Slice(newPOs, func(i, j int) bool { return newPOs[i] < newPOs[j] })

	for _, nd := range newNodes {
		if nd.Kind == KindAnd {
			a, b := nd.Fanin0, nd.Fanin1
			h := structuralHash(a, b)
			strash[h] = append(strash[h], nd.ID)
			newNodes[a.Node].fanoutRefs = append(newNodes[a.Node].fanoutRefs, nd.ID)
			newNodes[b.Node].fanoutRefs = append(newNodes[b.Node].fanoutRefs, nd.ID)
		} else if nd.Kind == KindPO {
			newNodes[nd.Fanin0.Node].fanoutRefs = append(newNodes[nd.Fanin0.Node].fanoutRefs, nd.ID)
		}
	}

	n.muNodes.Lock()
	n.nodes = newNodes
	n.strash = strash
	n.muNodes.Unlock()

	n.muPorts.Lock()
	n.pis = newPIs
	n.pos = newPOs
	n.muPorts.Unlock()

	n.ComputeLevels()

	return remap
}
