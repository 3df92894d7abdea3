package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/endpoint-labs/dirman/dirtree"
	"github.com/endpoint-labs/dirman/internal/repl"
	"github.com/endpoint-labs/dirman/version"
	"github.com/spf13/cobra"
)

// NewShellCmd creates and returns the shell subcommand for the dirman CLI.
// It starts the interactive command loop over a managed root directory.
func NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [ROOT]",
		Short: "Start the interactive directory shell",
		Long: `Start the interactive shell over a managed root directory.

ROOT is the directory the shell manages (default "."). It is created if it
does not exist. The shell reads one command per line; type 'help' for the
full command reference and 'exit' to leave.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	mgr, err := dirtree.NewManager(root)
	if err != nil {
		log.Fatalf("Failed to open root directory: %v", err)
	}

	fmt.Printf("dirman %s starting...\n", version.GetFullVersion())

	shell := repl.New(mgr, os.Stdin, os.Stdout)
	if err := shell.Run(); err != nil {
		log.Fatalf("Shell input failed: %v", err)
	}
}
