package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Report node counts for an AIGER file without modifying it",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	net, err := readNetwork(args[0])
	if err != nil {
		return err
	}
	Logger().Info("stats: %d total nodes, %d ANDs, %d PIs, %d POs",
		net.NumNodes(), net.NumAnds(), len(net.PIs()), len(net.POs()))
	return nil
}
