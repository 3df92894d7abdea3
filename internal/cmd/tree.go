package cmd

import (
	"fmt"
	"os"

	"github.com/endpoint-labs/dirman/dirtree"
	"github.com/endpoint-labs/dirman/internal/repl"
	"github.com/spf13/cobra"
)

// NewTreeCmd creates and returns the tree subcommand for the dirman CLI.
// It prints a directory tree once, without entering the shell.
func NewTreeCmd() *cobra.Command {
	var (
		path         string
		includeFiles bool
	)

	cmd := &cobra.Command{
		Use:   "tree [PATH]",
		Short: "Print a directory tree",
		Long: `Print the directory tree under a path and exit.

This is the non-interactive form of the shell's list command: a depth-first,
alphabetically sorted rendering with branch connectors. Directories only
unless --files is given.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			runTree(path, includeFiles)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to render the tree from")
	cmd.Flags().BoolVar(&includeFiles, "files", false, "Include regular files in the listing")

	return cmd
}

func runTree(path string, includeFiles bool) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return
	}
	if !info.IsDir() {
		fmt.Printf("Error: %s is not a directory\n", path)
		return
	}

	renderer := &dirtree.Renderer{
		IncludeFiles: includeFiles,
		Style:        repl.TreeStyler,
	}
	if err := renderer.Render(os.Stdout, path); err != nil {
		fmt.Printf("Error rendering tree: %v\n", err)
	}
}
