// Package cmd wires the synthesis engine to a Cobra command tree
// (rewrite, refactor, check, stats) operating on AIGER files, in the
// idiom of junjiewwang-perf-analysis/cmd/cli/cmd: a package-level
// rootCmd with PersistentPreRunE building shared state (here, the
// loaded config.Params and a logx.Logger) that every subcommand reads
// back through an accessor rather than re-deriving it.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aigsynth/config"
	"github.com/katalvlaran/aigsynth/logx"
)

var (
	cfgFile string
	verbose bool

	params config.Params
	logger logx.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aigsynth",
	Short: "A logic synthesis engine for combinational AND-Inverter Graphs",
	Long: `aigsynth reads a combinational network in ASCII AIGER format and
applies structural optimization passes to it: NPN-class-indexed
rewriting, reconvergence-driven refactoring, or just structural
validation and node-count reporting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		params = *p

		level := logx.ParseLevel("info")
		if verbose {
			level = logx.ParseLevel("debug")
		}
		logger = logx.New(level, os.Stdout)
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file (defaults applied when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
}

// Logger returns the logger PersistentPreRunE built for this
// invocation.
func Logger() logx.Logger {
	return logger
}

// Params returns the configuration PersistentPreRunE loaded for this
// invocation.
func Params() config.Params {
	return params
}
