// Package cli implements the dwave-mcp command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd creates the root command for the dwave-mcp CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dwave-mcp",
		Short: "MCP adapter for a mocked D-Wave problem store",
		Long: `dwave-mcp exposes a mocked D-Wave quantum annealing problem store
as Model Context Protocol tools, served over stdio or streamable HTTP.

Problems and results are kept in memory and solving returns a fixed
sample pattern, so the server is suitable for exercising MCP clients
without quantum hardware or a D-Wave account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewSmokeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command, exiting nonzero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
