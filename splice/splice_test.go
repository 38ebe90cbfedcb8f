package splice_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/mffc"
	"github.com/katalvlaran/aigsynth/splice"
	"github.com/stretchr/testify/require"
)

// buildRedundantAndChain builds a∧b∧c as a∧(b∧c), plus an unrelated
// a∧b node kept alive by its own PO, so splicing in a flatter
// left-associated a∧b∧c can reuse that surviving a∧b node for free.
func buildRedundantAndChain(t *testing.T) (net *aig.Network, a, b, c aig.Edge, ab, n1, root uint32, po1, po2 uint32) {
	t.Helper()
	net = aig.NewNetwork()
	a = net.CreatePI()
	b = net.CreatePI()
	c = net.CreatePI()

	abEdge, err := net.And(a, b)
	require.NoError(t, err)
	n1Edge, err := net.And(b, c)
	require.NoError(t, err)
	rootEdge, err := net.And(a, n1Edge)
	require.NoError(t, err)

	po1, err = net.CreatePO(abEdge)
	require.NoError(t, err)
	po2, err = net.CreatePO(rootEdge)
	require.NoError(t, err)

	return net, a, b, c, abEdge.Node, n1Edge.Node, rootEdge.Node, po1, po2
}

func buildFlatReplacement() (*dgraph.Graph, []dgraph.Edge) {
	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(3)
	ab := g.AddAnd(leaves[0], leaves[1])
	abc := g.AddAnd(ab, leaves[2])
	g.SetRoot(abc)
	return g, leaves
}

func TestGraphToNetworkCountFindsFreeAndNewNodes(t *testing.T) {
	net, a, b, c, _, n1, root, _, _ := buildRedundantAndChain(t)
	_, travID := mffc.Label(net, root, []uint32{a.Node, b.Node, c.Node})

	g, _ := buildFlatReplacement()
	leafEdges := []aig.Edge{a, b, c}

	nNodesSaved := 2 // root + n1
	got := splice.GraphToNetworkCount(net, g, leafEdges, travID, nNodesSaved)
	require.Equal(t, 1, got) // only the (ab, c) AND needs creating; ab itself is reused.
}

func TestGraphToNetworkCountReturnsMinusOneWhenOverBudget(t *testing.T) {
	net, a, b, c, _, _, root, _, _ := buildRedundantAndChain(t)
	_, travID := mffc.Label(net, root, []uint32{a.Node, b.Node, c.Node})

	g, _ := buildFlatReplacement()
	leafEdges := []aig.Edge{a, b, c}

	got := splice.GraphToNetworkCount(net, g, leafEdges, travID, 0)
	require.Equal(t, -1, got)
}

func TestGraphUpdateNetworkReducesNodeCountAndPreservesOtherPO(t *testing.T) {
	net, a, b, c, ab, _, root, po1, po2 := buildRedundantAndChain(t)
	_, travID := mffc.Label(net, root, []uint32{a.Node, b.Node, c.Node})

	g, _ := buildFlatReplacement()
	leafEdges := []aig.Edge{a, b, c}

	before := net.NumAnds()
	require.NoError(t, splice.GraphUpdateNetwork(net, root, g, leafEdges, travID, false))
	after := net.NumAnds()

	require.Equal(t, before-1, after) // gain of 1 node realized.

	// po1 (driving the surviving a∧b node) must be untouched.
	po1Node := net.Node(po1)
	require.Equal(t, ab, po1Node.Fanin0.Node)

	// po2 now drives the freshly spliced-in root, not the old one.
	po2Node := net.Node(po2)
	require.NotEqual(t, root, po2Node.Fanin0.Node)
	require.Nil(t, net.Node(root)) // old root was dereferenced and freed.
}

func TestGraphUpdateNetworkHandlesComplementedRoot(t *testing.T) {
	net := aig.NewNetwork()
	a := net.CreatePI()
	b := net.CreatePI()
	rootEdge, err := net.And(a, b)
	require.NoError(t, err)
	po, err := net.CreatePO(rootEdge)
	require.NoError(t, err)

	_, travID := mffc.Label(net, rootEdge.Node, []uint32{a.Node, b.Node})

	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(2)
	g.SetRoot(g.AddAnd(leaves[0], leaves[1]).Not())
	g.Complement() // ¬¬(a∧b) = a∧b again, exercised purely to flex the complement-propagation path.

	leafEdges := []aig.Edge{a, b}
	require.NoError(t, splice.GraphUpdateNetwork(net, rootEdge.Node, g, leafEdges, travID, false))

	poNode := net.Node(po)
	require.False(t, poNode.Fanin0.Compl)
}
