package aig_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/stretchr/testify/require"
)

func TestCheckPassesOnWellFormedNetwork(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	b := n.CreatePI()
	x, err := n.And(a, b)
	require.NoError(t, err)
	_, err = n.CreatePO(x)
	require.NoError(t, err)
	n.ComputeLevels()

	require.NoError(t, n.Check())
}

func TestCreatePORejectsDanglingFanin(t *testing.T) {
	n := aig.NewNetwork()
	a := n.CreatePI()
	_, err := n.CreatePO(aig.Edge{Node: 99}) // references a nonexistent node
	require.Error(t, err)
	_ = a
}
