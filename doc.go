// Package main provides the dirman command-line interface.
//
// dirman is an interactive tool for managing a hierarchical directory tree
// rooted at a single working directory. It supports creating directories
// (single or comma-separated batches), deleting them (with confirmation
// for non-empty targets), moving whole subtrees, and rendering the tree
// with branch connectors and stable per-name colors.
//
// The main binary supports multiple subcommands:
//   - shell: Start the interactive shell (also the default invocation)
//   - tree: Print a directory tree once and exit
//   - seed: Generate a sample directory hierarchy
package main
