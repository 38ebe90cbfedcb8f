package mffc_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/mffc"
	"github.com/stretchr/testify/require"
)

// buildFanoutTwoCone builds a 4-input cone a,b,c,d where ab := a∧b has
// both an internal use (feeding abc) and an external use (a direct PO),
// matching seed scenario 5: MFFC protection.
func buildFanoutTwoCone(t *testing.T) (n *aig.Network, abc, ab uint32, leaves []uint32) {
	t.Helper()
	n = aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	c := n.CreatePI()
	abEdge, err := n.And(a, b)
	require.NoError(t, err)
	abcEdge, err := n.And(abEdge, c)
	require.NoError(t, err)
	_, err = n.CreatePO(abcEdge)
	require.NoError(t, err)
	_, err = n.CreatePO(abEdge) // external use of ab keeps it out of abc's MFFC
	require.NoError(t, err)

	return n, abcEdge.Node, abEdge.Node, []uint32{a.Node, b.Node, c.Node}
}

func TestMFFCExcludesExternallyUsedNode(t *testing.T) {
	n, abc, ab, leaves := buildFanoutTwoCone(t)

	size, travID := mffc.Label(n, abc, leaves)

	require.Equal(t, 1, size) // only abc itself; ab has an external PO fanout
	require.True(t, mffc.IsInMFFC(n, abc, travID))
	require.False(t, mffc.IsInMFFC(n, ab, travID))

	// Label must be side-effect free: fanout counts are unchanged after.
	require.Equal(t, 2, n.Node(ab).FanoutCount())
	require.NoError(t, n.Check())
}

func TestMFFCIncludesSoleUseChain(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	c := n.CreatePI()
	ab, err := n.And(a, b)
	require.NoError(t, err)
	abc, err := n.And(ab, c)
	require.NoError(t, err)
	_, err = n.CreatePO(abc)
	require.NoError(t, err)

	size, travID := mffc.Label(n, abc.Node, []uint32{a.Node, b.Node, c.Node})

	require.Equal(t, 2, size) // both abc and ab are freed if abc is removed
	require.True(t, mffc.IsInMFFC(n, ab.Node, travID))
	require.NoError(t, n.Check())
}
