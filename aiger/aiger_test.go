package aiger_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/aiger"
	"github.com/katalvlaran/aigsynth/errs"
	"github.com/stretchr/testify/require"
)

func TestWriteEmitsCanonicalAnd2(t *testing.T) {
	net := aig.NewNetwork()
	a := net.CreatePI()
	b := net.CreatePI()
	root, err := net.And(a, b)
	require.NoError(t, err)
	_, err = net.CreatePO(root)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, aiger.Write(&buf, net))

	want := "aag 3 2 0 1 1\n2\n4\n6 2 4\n6\n"
	require.Equal(t, want, buf.String())
}

func TestWriteEmitsNegatedOutput(t *testing.T) {
	net := aig.NewNetwork()
	a := net.CreatePI()
	b := net.CreatePI()
	root, err := net.And(a, b)
	require.NoError(t, err)
	_, err = net.CreatePO(root.Not())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, aiger.Write(&buf, net))

	require.Equal(t, "aag 3 2 0 1 1\n2\n4\n6 2 4\n7\n", buf.String())
}

func TestReadParsesCanonicalAnd2(t *testing.T) {
	src := "aag 3 2 0 1 1\n2\n4\n6 2 4\n6\n"

	net, err := aiger.Read(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, net.PIs(), 2)
	require.Equal(t, 1, net.NumAnds())
	pos := net.POs()
	require.Len(t, pos, 1)

	poNode := net.Node(pos[0])
	and := net.Node(poNode.Fanin0.Node)
	require.False(t, poNode.Fanin0.Compl)
	require.Equal(t, aig.KindAnd, and.Kind)
}

// TestReadFoldsTriviallyContradictoryAnd exercises the path where an AND
// line's own operands already reduce trivially (var1 ∧ ¬var1): the
// defining variable's "positive" literal ends up mapped to Const0 itself
// (a negated edge on node 0) rather than a freshly allocated node,
// verifying that case is tracked exactly rather than assumed away.
func TestReadFoldsTriviallyContradictoryAnd(t *testing.T) {
	src := "aag 2 1 0 1 1\n2\n4 2 3\n4\n"

	net, err := aiger.Read(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, 0, net.NumAnds())
	pos := net.POs()
	require.Len(t, pos, 1)
	poNode := net.Node(pos[0])
	require.Equal(t, net.Const0(), poNode.Fanin0)
}

func TestRoundTripPreservesFunction(t *testing.T) {
	net := aig.NewNetwork()
	a := net.CreatePI()
	b := net.CreatePI()
	c := net.CreatePI()
	n1, err := net.And(a, b)
	require.NoError(t, err)
	root, err := net.And(n1, c.Not())
	require.NoError(t, err)
	_, err = net.CreatePO(root)
	require.NoError(t, err)
	require.NoError(t, net.Check())

	var buf strings.Builder
	require.NoError(t, aiger.Write(&buf, net))

	roundTripped, err := aiger.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.NoError(t, roundTripped.Check())

	require.Equal(t, net.NumAnds(), roundTripped.NumAnds())
	require.Len(t, roundTripped.PIs(), 3)
	require.Len(t, roundTripped.POs(), 1)

	var buf2 strings.Builder
	require.NoError(t, aiger.Write(&buf2, roundTripped))
	require.Equal(t, buf.String(), buf2.String())
}

func TestReadRejectsLatches(t *testing.T) {
	src := "aag 2 1 1 0 1\n2\n4 2\n4\n"

	_, err := aiger.Read(strings.NewReader(src))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStructural)
}

func TestReadRejectsMalformedHeader(t *testing.T) {
	_, err := aiger.Read(strings.NewReader("not an aag header\n"))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStructural)
}

func TestReadRejectsUndeclaredVariableReference(t *testing.T) {
	src := "aag 2 1 0 1 1\n2\n4 2 99\n4\n"

	_, err := aiger.Read(strings.NewReader(src))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStructural)
}
