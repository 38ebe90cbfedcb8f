package cut

import (
	"sort"

	"github.com/katalvlaran/aigsynth/aig"
)

// Reconvergence grows a reconvergence-driven cut for refactoring (spec
// §4.C "Reconvergence-driven cut"): starting from the single leaf pNode,
// repeatedly replace the "best" leaf (the one whose fanin expansion
// shares the most existing fanout with the current cone, i.e. maximizes
// reconvergence) by its two fanins, so long as the leaf count stays at
// most nConeSizeMax and the cone's node count stays at most
// nNodeSizeMax. Returns the final sorted leaf set and the cone: every
// AND node expanded while growing the cut, pNode included.
func Reconvergence(net *aig.Network, pNode uint32, nConeSizeMax, nNodeSizeMax int) (leaves []uint32, cone []uint32) {
	leafSet := map[uint32]bool{pNode: true}
	coneSet := map[uint32]bool{}

	for {
		expandable := false
		var bestLeaf uint32
		bestScore := -1

		for leaf := range leafSet {
			node := net.Node(leaf)
			if node == nil || !node.IsAnd() {
				continue
			}
			if len(leafSet)-1+2 > nConeSizeMax {
				continue
			}
			score := reconvergenceScore(net, node, leafSet, coneSet)
			if score > bestScore {
				bestScore = score
				bestLeaf = leaf
				expandable = true
			}
		}

		if !expandable || len(coneSet)+1 > nNodeSizeMax {
			break
		}

		node := net.Node(bestLeaf)
		delete(leafSet, bestLeaf)
		coneSet[bestLeaf] = true
		leafSet[node.Fanin0.Node] = true
		leafSet[node.Fanin1.Node] = true
	}

	leaves = make([]uint32, 0, len(leafSet))
	for l := range leafSet {
		leaves = append(leaves, l)
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i] < leaves[j] })

	cone = make([]uint32, 0, len(coneSet))
	for c := range coneSet {
		cone = append(cone, c)
	}
	sort.Slice(cone, func(i, j int) bool { return cone[i] < cone[j] })

	return leaves, cone
}

// reconvergenceScore counts how many of node's fanouts are already
// leaves or cone members of the growing cut — the measure of shared
// reconvergence that makes a leaf the "best" one to expand.
func reconvergenceScore(net *aig.Network, node *aig.Node, leafSet, coneSet map[uint32]bool) int {
	score := 0
	for _, fo := range node.Fanouts() {
		if leafSet[fo] || coneSet[fo] {
			score++
		}
	}
	return score
}
