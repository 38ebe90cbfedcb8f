package rewrite_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/cut"
	"github.com/katalvlaran/aigsynth/errs"
	"github.com/katalvlaran/aigsynth/library"
	"github.com/katalvlaran/aigsynth/npn"
	"github.com/katalvlaran/aigsynth/rewrite"
	"github.com/stretchr/testify/require"
)

// buildRedundantAnd2Chain wires up a∧b via seven AND nodes instead of
// one, purely through a pair of "OR-of-complementary-splits" identities
// — (a∧c)∨(a∧¬c) = a and (b∧d)∨(b∧¬d) = b — each realized with De
// Morgan's NOR construction since the AIG has no native OR primitive.
// The resulting root node's real function is exactly a∧b, but it
// structurally reaches all four PIs, so its widest 4-feasible cut has
// leaves {a, b, c, d}: precisely the NPN class the default library
// registers its AND2 blueprint under, with c and d landing in the
// blueprint's two unused input slots.
func buildRedundantAnd2Chain(t *testing.T) (net *aig.Network, root, po uint32) {
	t.Helper()
	net = aig.NewNetwork()
	a := net.CreatePI()
	b := net.CreatePI()
	c := net.CreatePI()
	d := net.CreatePI()

	n1, err := net.And(a, c)
	require.NoError(t, err)
	n2, err := net.And(a, c.Not())
	require.NoError(t, err)
	nor1, err := net.And(n1.Not(), n2.Not())
	require.NoError(t, err)
	g1 := nor1.Not() // = a

	m1, err := net.And(b, d)
	require.NoError(t, err)
	m2, err := net.And(b, d.Not())
	require.NoError(t, err)
	nor2, err := net.And(m1.Not(), m2.Not())
	require.NoError(t, err)
	g2 := nor2.Not() // = b

	rootEdge, err := net.And(g1, g2) // = a∧b
	require.NoError(t, err)

	poID, err := net.CreatePO(rootEdge)
	require.NoError(t, err)

	return net, rootEdge.Node, poID
}

func defaultRewriteConfig() rewrite.Config {
	tables := npn.Build()
	return rewrite.Config{
		CutCfg: cut.DefaultConfig(),
		Tables: tables,
		Forest: library.BuildDefault(tables),
	}
}

func TestRewriteCollapsesRedundantChainToPrimitiveAnd2(t *testing.T) {
	net, root, po := buildRedundantAnd2Chain(t)
	before := net.NumAnds()
	require.Equal(t, 7, before)

	stats, err := rewrite.Rewrite(net, defaultRewriteConfig())
	require.NoError(t, err)

	require.Equal(t, 1, stats.NodesRewritten)
	require.Equal(t, 6, stats.NodesSaved) // 7-node MFFC down to 1 new AND node.
	require.Equal(t, 1, net.NumAnds())

	require.Nil(t, net.Node(root)) // old 7-node chain's root was freed.
	poNode := net.Node(po)
	require.NotNil(t, poNode)
	require.Equal(t, 1, net.Node(poNode.Fanin0.Node).FanoutCount())
}

func TestRewriteLeavesMinimalCircuitUnchanged(t *testing.T) {
	net := aig.NewNetwork()
	a := net.CreatePI()
	b := net.CreatePI()
	rootEdge, err := net.And(a, b)
	require.NoError(t, err)
	_, err = net.CreatePO(rootEdge)
	require.NoError(t, err)

	stats, err := rewrite.Rewrite(net, defaultRewriteConfig())
	require.NoError(t, err)

	require.Equal(t, 0, stats.NodesRewritten)
	require.Equal(t, 1, net.NumAnds()) // only a 2-leaf cut exists; rewrite needs 4.
}

func TestRewriteRejectsNonFourFeasibleCutConfig(t *testing.T) {
	cfg := defaultRewriteConfig()
	cfg.CutCfg.NVarsMax = 3

	_, err := rewrite.Rewrite(aig.NewNetwork(), cfg)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConfig))
}

func TestRewriteRejectsMissingTablesOrForest(t *testing.T) {
	cfg := rewrite.Config{CutCfg: cut.DefaultConfig()}
	_, err := rewrite.Rewrite(aig.NewNetwork(), cfg)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConfig))
}
