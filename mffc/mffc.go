// Package mffc computes the Maximum Fanout-Free Cone of an AIG root: the
// set of nodes that would become dereferenced if every edge out of the
// root were removed (spec §4.B). Label is fully speculative: it pins a
// caller-supplied boundary (the cut leaves) so they are never absorbed,
// walks a reference-counted DFS that severs (and records) every fanout
// edge it crosses, counts the nodes that would be freed, then undoes
// every severed edge and boundary pin — so the network's observable
// state is unchanged once Label returns. The real, durable mutation is
// deferred entirely to splice.GraphUpdateNetwork, per spec §5's ordering
// guarantee ("MFFC labeling must be followed by its count-replacement
// call with no intervening AIG mutation").
package mffc

import "github.com/katalvlaran/aigsynth/aig"

type severed struct {
	user, target uint32
}

// Label marks and counts the MFFC of root given a fixed boundary of
// leaves that must never be absorbed into the cone (typically a cut's
// leaf set). Returns the size of the labeled set and the travID used to
// mark it, so a caller that wants to know which specific nodes were
// marked can query IsInMFFC while still holding the same pass.
func Label(net *aig.Network, root uint32, leaves []uint32) (size int, travID uint32) {
	for _, leaf := range leaves {
		net.Ref(leaf)
	}

	travID = net.NextTravID()
	var undo []severed
	size = labelRec(net, root, travID, &undo)

	for i := len(undo) - 1; i >= 0; i-- {
		net.RestoreFanout(undo[i].user, undo[i].target)
	}
	for _, leaf := range leaves {
		net.Unref(leaf)
	}
	return size, travID
}

func labelRec(net *aig.Network, id uint32, travID uint32, undo *[]severed) int {
	node := net.Node(id)
	if node == nil || node.Kind != aig.KindAnd {
		return 0
	}
	if net.IsMarked(id, travID) {
		return 0
	}
	net.Mark(id, travID)
	count := 1

	for _, fi := range [2]aig.Edge{node.Fanin0, node.Fanin1} {
		child := net.Node(fi.Node)
		if child == nil || child.Kind != aig.KindAnd {
			continue
		}
		net.SeverFanout(id, fi.Node)
		*undo = append(*undo, severed{user: id, target: fi.Node})
		if child.FanoutCount() == 0 {
			count += labelRec(net, fi.Node, travID, undo)
		}
	}

	return count
}

// IsInMFFC reports whether id was marked by the most recent Label call
// that returned travID.
func IsInMFFC(net *aig.Network, id, travID uint32) bool {
	return net.IsMarked(id, travID)
}
