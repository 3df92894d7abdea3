// Package cmd provides the command-line interface implementation for dirman.
//
// This package contains all the subcommand implementations for the dirman
// CLI tool. It uses the Cobra library for command structure and Fang for
// beautiful styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator; defaults to the interactive shell
//   - shell: The interactive directory-management loop
//   - tree: One-shot directory tree rendering
//   - seed: Sample directory hierarchy generation
//   - version: Detailed version and build information
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands and keeps the bare `dirman [ROOT]` invocation working as a
// shortcut for the shell.
//
// The package leverages the dirtree package for core directory operations
// and the repl package for the interactive loop.
package cmd
