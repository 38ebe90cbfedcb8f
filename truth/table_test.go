package truth_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/truth"
	"github.com/stretchr/testify/require"
)

func TestVarAndConst(t *testing.T) {
	a := truth.Var(2, 0)
	b := truth.Var(2, 1)

	require.False(t, a.IsConst0())
	require.False(t, a.IsConst1())
	require.True(t, truth.Const(2, false).IsConst0())
	require.True(t, truth.Const(2, true).IsConst1())

	and := truth.And(a, b)
	require.Equal(t, 1, and.CountOnes()) // only minterm 3 (both bits set)
	require.True(t, and.Bit(3))
}

func TestNotAndXorIdentities(t *testing.T) {
	a := truth.Var(3, 0)
	notA := truth.Not(a)
	require.True(t, truth.Equal(truth.Or(a, notA), truth.Const(3, true)))
	require.True(t, truth.And(a, notA).IsConst0())
	require.True(t, truth.Xor(a, a).IsConst0())
}

func TestCofactor(t *testing.T) {
	// f = a ∧ b, variable 0 is a.
	a := truth.Var(2, 0)
	b := truth.Var(2, 1)
	f := truth.And(a, b)

	require.True(t, f.Cofactor0(0).IsConst0()) // a=0 -> f=0
	require.True(t, truth.Equal(f.Cofactor1(0), b))
}

func TestStretchEmbedsSubfunction(t *testing.T) {
	// child over 1 variable, mapped onto parent bit position 2 of a 3-var space.
	child := truth.Var(1, 0)
	parent := truth.Stretch(child, 3, []int{2})

	require.True(t, truth.Equal(parent, truth.Var(3, 2)))
}

func TestTwoVarAndMatchesNPNClassConstant(t *testing.T) {
	// Seed scenario 4's 4-input cut truth 0x8888 is the 2-AND function
	// a∧b stretched over a 4-variable space (c, d unused) — exactly the
	// pattern the library is expected to match down to a 2-AND tree.
	a := truth.Var(4, 0)
	b := truth.Var(4, 1)
	f := truth.And(a, b)

	require.Equal(t, uint64(0x8888), f.Words[0])
}
