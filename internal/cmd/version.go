package cmd

import (
	"github.com/endpoint-labs/dirman/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand for the dirman
// CLI. It prints detailed version and build information, beyond the short
// form of the --version flag.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Long: `Show detailed version information for dirman.

Prints the version, git commit, and build date, sourced from build flags
when set and from Go build info otherwise.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion("dirman")
		},
	}
}
