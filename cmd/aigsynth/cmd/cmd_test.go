package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const and2Src = "aag 3 2 0 1 1\n2\n4\n6 2 4\n6\n"

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags() {
	cfgFile = ""
	verbose = false
	rewriteOutput, rewriteNpnBlob, rewriteLibBlob = "", "", ""
	rewriteUseZeros, rewritePassCount = false, 1
	refactorOutput = ""
	refactorUseZeros, refactorUseDcs, refactorPassCount = false, false, 1
}

func TestCheckCommandAcceptsValidFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	path := writeFixture(t, dir, "in.aag", and2Src)

	rootCmd.SetArgs([]string{"check", path})
	require.NoError(t, rootCmd.Execute())
}

func TestStatsCommandReportsCounts(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	path := writeFixture(t, dir, "in.aag", and2Src)

	rootCmd.SetArgs([]string{"stats", path})
	require.NoError(t, rootCmd.Execute())
}

func TestRewriteCommandWritesOutputFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.aag", and2Src)
	out := filepath.Join(dir, "out.aag")

	rootCmd.SetArgs([]string{"rewrite", in, "-o", out})
	require.NoError(t, rootCmd.Execute())

	net, err := readNetwork(out)
	require.NoError(t, err)
	require.NoError(t, net.Check())
	require.Equal(t, 1, net.NumAnds())
}

func TestRefactorCommandWritesOutputFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	in := writeFixture(t, dir, "in.aag", and2Src)
	out := filepath.Join(dir, "out.aag")

	rootCmd.SetArgs([]string{"refactor", in, "-o", out})
	require.NoError(t, rootCmd.Execute())

	net, err := readNetwork(out)
	require.NoError(t, err)
	require.NoError(t, net.Check())
}

func TestCheckCommandRejectsMissingFile(t *testing.T) {
	resetFlags()
	rootCmd.SetArgs([]string{"check", filepath.Join(t.TempDir(), "missing.aag")})
	require.Error(t, rootCmd.Execute())
}
