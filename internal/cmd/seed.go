package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// seedNames is the pool of branch names used for intermediate levels.
// A small pool forces overlap so the generated tree shares ancestors.
var seedNames = []string{
	"fruits", "vegetables", "grains", "citrus", "berries",
	"archive", "inbox", "projects", "notes", "media",
}

// NewSeedCmd creates and returns the seed subcommand for the dirman CLI.
// It generates a sample directory hierarchy for demos and testing.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		dirCount   int
		maxDepth   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample directory hierarchy",
		Long: `Generate a randomized directory hierarchy for testing dirman.

Intermediate levels draw names from a small pool so branches overlap;
each generated leaf directory gets a unique name. The result is a tree
worth exploring with the shell's list command.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runSeed(outputPath, dirCount, maxDepth, verbose); err != nil {
				log.Fatalf("Failed to seed directory tree: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&dirCount, "count", "c", 25, "Number of leaf directories to generate")
	cmd.Flags().IntVarP(&maxDepth, "depth", "d", 4, "Maximum tree depth")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, dirCount, maxDepth int, verbose bool) error {
	if dirCount < 1 || maxDepth < 1 {
		return fmt.Errorf("count and depth must be positive")
	}
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if verbose {
		fmt.Printf("Generating %d leaf directories (max depth %d) in %s\n", dirCount, maxDepth, outputPath)
	}

	created := 0
	for created < dirCount {
		depthBig, err := rand.Int(rand.Reader, big.NewInt(int64(maxDepth)))
		if err != nil {
			return err
		}
		depth := int(depthBig.Int64()) + 1

		dirPath := outputPath
		for level := 0; level < depth-1; level++ {
			nameIdx, err := rand.Int(rand.Reader, big.NewInt(int64(len(seedNames))))
			if err != nil {
				return err
			}
			dirPath = filepath.Join(dirPath, seedNames[nameIdx.Int64()])
		}
		dirPath = filepath.Join(dirPath, uuid.New().String()[:8])

		if _, err := os.Stat(dirPath); err == nil {
			continue
		}
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dirPath, err)
		}
		created++

		if verbose {
			fmt.Printf("Created %s\n", dirPath)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d leaf directories\n", created)
	}
	return nil
}
