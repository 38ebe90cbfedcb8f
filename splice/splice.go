// Package splice implements component H: installing a decomposition
// graph's factored form into a live AIG in place of an existing node,
// reusing whatever structurally-equivalent AND nodes already exist
// outside the node's MFFC, creating the rest, and atomically
// redirecting fanout (spec §4.D "Count-replacement" and
// "Build-and-splice").
package splice

import (
	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/mffc"
)

func resolve(e aig.Edge, compl bool) aig.Edge {
	if compl {
		return e.Not()
	}
	return e
}

// GraphToNetworkCount walks g bottom-up and counts how many of its
// internal nodes would need to be newly created if g replaced root:
// an internal node is "free" when an equivalent AND already exists in
// the network's structural-hash table and that equivalent is not part
// of root's MFFC (travID from a prior mffc.Label call); otherwise it
// must be created fresh, whether because no equivalent exists yet or
// because the only equivalent would be destroyed as part of freeing
// the MFFC. Returns -1 once the running new-node count exceeds
// nNodesSaved, since the caller has already decided such a candidate
// can't yield a non-negative gain (spec §4.D: "-1 if the count exceeds
// the MFFC size").
func GraphToNetworkCount(net *aig.Network, g *dgraph.Graph, leafEdges []aig.Edge, travID uint32, nNodesSaved int) int {
	edges := make([]aig.Edge, len(g.Nodes))
	isNew := make([]bool, len(g.Nodes))
	newCount := 0

	for i, nd := range g.Nodes {
		switch nd.Kind {
		case dgraph.KindConst0:
			edges[i] = net.Const0()
		case dgraph.KindConst1:
			edges[i] = net.Const1()
		case dgraph.KindLeaf:
			edges[i] = leafEdges[nd.ExternalEdge]
		case dgraph.KindAnd, dgraph.KindOr:
			if isNew[nd.Fanin0.Node] || isNew[nd.Fanin1.Node] {
				isNew[i] = true
				newCount++
				break
			}
			a := resolve(edges[nd.Fanin0.Node], nd.Fanin0.Compl)
			b := resolve(edges[nd.Fanin1.Node], nd.Fanin1.Compl)
			if id, ok := net.LookupAnd(a, b); ok && !mffc.IsInMFFC(net, id, travID) {
				edges[i] = aig.Edge{Node: id}
			} else {
				isNew[i] = true
				newCount++
			}
		}
		if newCount > nNodesSaved {
			return -1
		}
	}
	return newCount
}

// GraphUpdateNetwork performs the commit graphToNetworkCount already
// measured: walk g bottom-up, fetch or freshly build each internal
// node's AIG equivalent (AndFresh when the only existing equivalent
// lies inside root's MFFC, so it isn't spared from the deref this same
// call triggers), then atomically redirect every edge pointing at root
// onto the constructed replacement and free whatever of the old MFFC
// no longer has any user (spec §4.D "Build-and-splice").
// outputCompl applies one further inversion on top of g.Root's own
// complement bit before splicing — the "overall-complement from phase
// bit 4" spec §4.F step 3 carries separately from the per-candidate
// DGraph's internal polarity, so it must be threaded through here
// rather than folded into g itself (a library blueprint's DGraph is
// shared across every call site that matches its class and must not be
// mutated to bake in a call-specific polarity).
func GraphUpdateNetwork(net *aig.Network, root uint32, g *dgraph.Graph, leafEdges []aig.Edge, travID uint32, outputCompl bool) error {
	edges := make([]aig.Edge, len(g.Nodes))

	for i, nd := range g.Nodes {
		switch nd.Kind {
		case dgraph.KindConst0:
			edges[i] = net.Const0()
		case dgraph.KindConst1:
			edges[i] = net.Const1()
		case dgraph.KindLeaf:
			edges[i] = leafEdges[nd.ExternalEdge]
		case dgraph.KindAnd, dgraph.KindOr:
			a := resolve(edges[nd.Fanin0.Node], nd.Fanin0.Compl)
			b := resolve(edges[nd.Fanin1.Node], nd.Fanin1.Compl)

			var edge aig.Edge
			var err error
			if id, ok := net.LookupAnd(a, b); ok && !mffc.IsInMFFC(net, id, travID) {
				edge = aig.Edge{Node: id}
			} else {
				edge, err = net.AndFresh(a, b)
				if err != nil {
					return err
				}
			}
			edges[i] = edge
		}
	}

	newRoot := resolve(edges[g.Root.Node], g.Root.Compl)
	if outputCompl {
		newRoot = newRoot.Not()
	}
	return net.Replace(root, newRoot)
}
