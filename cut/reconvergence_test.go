package cut_test

import (
	"testing"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/cut"
	"github.com/stretchr/testify/require"
)

func TestReconvergenceGrowsBeyondSingleLeaf(t *testing.T) {
	net, a, b, c, ab, abc := buildAbc(t)
	_ = ab

	leaves, cone := cut.Reconvergence(net, abc, 4, 4)

	require.ElementsMatch(t, []uint32{a, b, c}, leaves)
	require.Contains(t, cone, abc)
}

func TestReconvergenceRespectsConeSizeMax(t *testing.T) {
	net, _, _, _, ab, abc := buildAbc(t)

	leaves, cone := cut.Reconvergence(net, abc, 0, 0)

	require.Equal(t, []uint32{abc}, leaves)
	require.Empty(t, cone)
	_ = ab
}
