// The bankedmem command runs workloads against the banked memory
// controller model.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "bankedmem",
	Short: "Bankedmem runs cycle-accurate workloads against a banked " +
		"memory controller model.",
	Long: `Bankedmem simulates a memory that is presented as a single ` +
		`logical synchronous read/write memory but is physically organized ` +
		`as a grid of banks, tiled along the data-width and address-depth ` +
		`axes. The run subcommand drives the model with a randomized ` +
		`write/read workload and verifies every read against a reference ` +
		`model.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
