package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aigsynth/rewrite"
)

var (
	rewriteOutput     string
	rewriteNpnBlob    string
	rewriteLibBlob    string
	rewriteUseZeros   bool
	rewritePassCount  int
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite FILE",
	Short: "Apply NPN-class-indexed rewriting to an AIGER file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().StringVarP(&rewriteOutput, "output", "o", "", "Output AIGER path (defaults to overwriting the input)")
	rewriteCmd.Flags().StringVar(&rewriteNpnBlob, "npn-blob", "", "Path to a precomputed NPN-table blob (defaults to npn.Build())")
	rewriteCmd.Flags().StringVar(&rewriteLibBlob, "library-blob", "", "Path to a precomputed library blob (defaults to library.BuildDefault)")
	rewriteCmd.Flags().BoolVar(&rewriteUseZeros, "use-zeros", false, "Accept zero-gain replacements")
	rewriteCmd.Flags().IntVar(&rewritePassCount, "passes", 1, "Number of rewrite passes to run to convergence or this ceiling")
}

func runRewrite(_ *cobra.Command, args []string) error {
	input := args[0]
	net, err := readNetwork(input)
	if err != nil {
		return err
	}

	tables, err := loadTables(rewriteNpnBlob)
	if err != nil {
		return err
	}
	forest, err := loadForest(rewriteLibBlob, tables)
	if err != nil {
		return err
	}

	cfg := rewrite.Config{
		CutCfg:    cutConfigFromParams(),
		Tables:    tables,
		Forest:    forest,
		FUseZeros: rewriteUseZeros || Params().FUseZeros,
	}

	var total rewrite.Stats
	for i := 0; i < rewritePassCount; i++ {
		stats, err := rewrite.Rewrite(net, cfg)
		if err != nil {
			return err
		}
		total.NodesVisited += stats.NodesVisited
		total.NodesRewritten += stats.NodesRewritten
		total.NodesSaved += stats.NodesSaved
		total.LimitHits += stats.LimitHits
		if stats.NodesRewritten == 0 {
			break
		}
	}

	if err := net.Check(); err != nil {
		return err
	}

	out := outputPath(rewriteOutput, input)
	if err := writeNetwork(out, net); err != nil {
		return err
	}

	Logger().Info("rewrite: visited %d, rewritten %d, saved %d nodes, %d limit hits, %d AND nodes remain",
		total.NodesVisited, total.NodesRewritten, total.NodesSaved, total.LimitHits, net.NumAnds())
	return nil
}
