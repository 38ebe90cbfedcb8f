package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate every AIG structural invariant on an AIGER file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	net, err := readNetwork(args[0])
	if err != nil {
		return err
	}
	if err := net.Check(); err != nil {
		return err
	}
	Logger().Info("check: ok — %d AND nodes, %d PIs, %d POs", net.NumAnds(), len(net.PIs()), len(net.POs()))
	return nil
}
