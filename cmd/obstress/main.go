package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "obstress",
	Short: "Stress harness for the observation synchronization core",
	Long: `obstress exercises the observation synchronization primitives under
sustained concurrent load.

It runs two stages:
  - mutex: N workers hammer one lock with lock/increment/unlock cycles
    and the final counter is checked against N*M
  - slot: each worker installs its own transaction and verifies that it
    never observes a neighbor's

Scenarios can be described in a YAML file or overridden with flags.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
