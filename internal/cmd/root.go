package cmd

import (
	"github.com/endpoint-labs/dirman/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the dirman CLI.
// It sets up all subcommands, command groups, and basic configuration.
// Running the root command without a subcommand starts the interactive
// shell.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dirman [ROOT]",
		Short: "dirman - An interactive manager for directory trees",
		Long: `dirman is an interactive command-line tool for creating, deleting, moving,
and listing directories inside a single managed root directory.

ROOT is the directory the tool manages (default "."). All paths entered in
the shell are relative to it; operations can never escape it.

Use subcommands to perform different operations:
  - shell:   Start the interactive shell (also the default)
  - tree:    Print a directory tree once and exit
  - seed:    Generate a sample directory hierarchy
  - version: Show detailed version information`,
		Version: version.GetFullVersion(),
		Args:    cobra.MaximumNArgs(1),
		Run:     runShell,
	}

	groupFilesystem := "filesystem"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	shellCmd := NewShellCmd()
	treeCmd := NewTreeCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	shellCmd.GroupID = groupFilesystem
	treeCmd.GroupID = groupFilesystem
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
