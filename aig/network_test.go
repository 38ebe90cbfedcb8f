package aig_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/stretchr/testify/require"
)

func TestIdentityGate(t *testing.T) {
	// Seed scenario 1: two PIs a,b; AND x = a∧b; PO = x. The network is
	// already minimal, so it must be left untouched by any later pass.
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	x, err := n.And(a, b)
	require.NoError(t, err)
	_, err = n.CreatePO(x)
	require.NoError(t, err)

	require.Equal(t, 1, n.NumAnds())
	require.NoError(t, n.Check())
}

func TestRedundantAndCollapsesToFanin(t *testing.T) {
	// Seed scenario 2: x = a∧a collapses to a via structural simplification.
	n := aig.NewNetwork()
	a := n.CreatePI()
	x, err := n.And(a, a)
	require.NoError(t, err)
	require.Equal(t, a, x)
	require.Equal(t, 0, n.NumAnds())
}

func TestConstantFoldingAndNotA(t *testing.T) {
	// x = a ∧ ¬a must fold to constant-0 without creating an AND node.
	n := aig.NewNetwork()
	a := n.CreatePI()
	x, err := n.And(a, a.Not())
	require.NoError(t, err)
	require.Equal(t, n.Const0(), x)
	require.Equal(t, 0, n.NumAnds())
}

func TestStructuralHashingDedups(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	x1, err := n.And(a, b)
	require.NoError(t, err)
	x2, err := n.And(b, a) // commuted operand order must hash the same
	require.NoError(t, err)
	require.Equal(t, x1, x2)
	require.Equal(t, 1, n.NumAnds())
}

func TestFanoutCountsExact(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	x, err := n.And(a, b)
	require.NoError(t, err)
	_, err = n.CreatePO(x)
	require.NoError(t, err)
	_, err = n.CreatePO(x.Not())
	require.NoError(t, err)

	require.Equal(t, 2, n.Node(x.Node).FanoutCount())
	require.NoError(t, n.Check())
}

func TestDerefFreesMFFC(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	c := n.CreatePI()
	ab, err := n.And(a, b)
	require.NoError(t, err)
	abc, err := n.And(ab, c)
	require.NoError(t, err)
	po, err := n.CreatePO(abc)
	require.NoError(t, err)

	require.Equal(t, 2, n.NumAnds())

	require.NoError(t, n.SetPOFanin(po, n.Const1())) // rewire PO away from abc
	n.Deref(abc)

	require.Equal(t, 0, n.NumAnds())
}
