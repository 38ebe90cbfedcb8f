package dgraph_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/stretchr/testify/require"
)

func TestAndOfTwoLeaves(t *testing.T) {
	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(2)
	and := g.AddAnd(leaves[0], leaves[1])
	g.SetRoot(and)

	require.True(t, g.Eval([]bool{true, true}))
	require.False(t, g.Eval([]bool{true, false}))
	require.False(t, g.Eval([]bool{false, false}))
}

func TestOrViaDeMorgan(t *testing.T) {
	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(2)
	or := g.AddOr(leaves[0], leaves[1])
	g.SetRoot(or)

	require.True(t, g.Eval([]bool{true, false}))
	require.True(t, g.Eval([]bool{false, true}))
	require.False(t, g.Eval([]bool{false, false}))
}

func TestComplementFlipsOutputOnly(t *testing.T) {
	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(2)
	and := g.AddAnd(leaves[0], leaves[1])
	g.SetRoot(and)
	g.Complement()

	require.False(t, g.Eval([]bool{true, true}))
	require.True(t, g.Eval([]bool{true, false}))
}

func TestConstantGraphs(t *testing.T) {
	g0 := dgraph.NewGraph()
	g0.SetRoot(g0.Const0())
	require.False(t, g0.Eval(nil))

	g1 := dgraph.NewGraph()
	g1.SetRoot(g1.Const1())
	require.True(t, g1.Eval(nil))
}

func TestNInternalCountsOnlyNonLeaves(t *testing.T) {
	g := dgraph.NewGraph()
	leaves := g.CreateLeaves(3)
	ab := g.AddAnd(leaves[0], leaves[1])
	abc := g.AddAnd(ab, leaves[2])
	g.SetRoot(abc)

	require.Equal(t, 2, g.NInternal())
}
