package cmd

import (
	"os"

	"github.com/katalvlaran/aigsynth/aig"
	"github.com/katalvlaran/aigsynth/aiger"
	"github.com/katalvlaran/aigsynth/cut"
	"github.com/katalvlaran/aigsynth/library"
	"github.com/katalvlaran/aigsynth/npn"
)

// readNetwork loads an ASCII AIGER file from path.
func readNetwork(path string) (*aig.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return aiger.Read(f)
}

// writeNetwork serializes net as ASCII AIGER to path, creating or
// truncating it.
func writeNetwork(path string, net *aig.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return aiger.Write(f, net)
}

// loadTables reads npn.Tables from blobPath if given, otherwise
// generates them from scratch via npn.Build — the bootstrap path a host
// without a precomputed blob uses (spec §6).
func loadTables(blobPath string) (*npn.Tables, error) {
	if blobPath == "" {
		return npn.Build(), nil
	}
	f, err := os.Open(blobPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return npn.LoadTables(f)
}

// loadForest reads a library.Forest from blobPath if given, otherwise
// falls back to library.BuildDefault's small hand-curated forest.
func loadForest(blobPath string, tables *npn.Tables) (*library.Forest, error) {
	if blobPath == "" {
		return library.BuildDefault(tables), nil
	}
	f, err := os.Open(blobPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return library.LoadForest(f)
}

// cutConfigFromParams builds a rewrite-oriented cut.Config (4-feasible,
// as rewrite.Rewrite requires) from the loaded parameter set.
func cutConfigFromParams() cut.Config {
	p := Params()
	return cut.Config{
		NVarsMax: 4,
		NKeepMax: p.NKeepMax,
		FTruth:   p.FTruth,
		FFilter:  p.FFilter,
	}
}

// outputPath returns explicitOut if non-empty, else the original input
// path — i.e. an in-place rewrite when no -o is given.
func outputPath(explicitOut, input string) string {
	if explicitOut != "" {
		return explicitOut
	}
	return input
}
