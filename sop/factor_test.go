package sop_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/dgraph"
	"github.com/katalvlaran/aigsynth/sop"
	"github.com/katalvlaran/aigsynth/truth"
	"github.com/stretchr/testify/require"
)

func evalAllAssignments(t *testing.T, g *dgraph.Graph, nVars int) *truth.Table {
	t.Helper()
	out := truth.New(nVars)
	total := 1 << uint(nVars)
	for m := 0; m < total; m++ {
		assignment := make([]bool, nVars)
		for v := 0; v < nVars; v++ {
			assignment[v] = (m>>uint(v))&1 == 1
		}
		if g.Eval(assignment) {
			out.SetBit(m)
		}
	}
	return out
}

func factorAndCheck(t *testing.T, f *truth.Table, nVars int) {
	t.Helper()
	cover, polarity, err := sop.ISOP(f, truth.Not(f))
	require.NoError(t, err)

	graph := dgraph.NewGraph()
	leaves := graph.CreateLeaves(nVars)
	sop.Factor(graph, cover, nVars, leaves)

	got := evalAllAssignments(t, graph, nVars)
	if !polarity {
		got = negate(got)
	}
	require.True(t, truth.Equal(got, f))
}

func negate(t *truth.Table) *truth.Table { return truth.Not(t) }

func TestFactorReproducesThreeVarAnd(t *testing.T) {
	a := truth.Var(3, 0)
	b := truth.Var(3, 1)
	c := truth.Var(3, 2)
	f := truth.And(truth.And(a, b), c)

	factorAndCheck(t, f, 3)
}

func TestFactorReproducesMux(t *testing.T) {
	// f = s ? a : b = (s∧a) ∨ (¬s∧b), variables s=0, a=1, b=2.
	s := truth.Var(3, 0)
	a := truth.Var(3, 1)
	b := truth.Var(3, 2)
	f := truth.Or(truth.And(s, a), truth.And(truth.Not(s), b))

	factorAndCheck(t, f, 3)
}

func TestFactorReproducesXor(t *testing.T) {
	a := truth.Var(2, 0)
	b := truth.Var(2, 1)
	f := truth.Xor(a, b)

	factorAndCheck(t, f, 2)
}
