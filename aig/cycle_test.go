package aig_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/stretchr/testify/require"
)

func TestAcyclicNetworkPasses(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	x, err := n.And(a, b)
	require.NoError(t, err)
	_, err = n.CreatePO(x)
	require.NoError(t, err)

	ok, cerr := n.IsAcyclic()
	require.True(t, ok)
	require.Nil(t, cerr)
}
