// Command aigsynth is the CLI entry point: a thin wrapper around
// package cmd's Cobra command tree.
package main

import "github.com/katalvlaran/aigsynth/cmd/aigsynth/cmd"

func main() {
	cmd.Execute()
}
