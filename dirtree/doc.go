// Package dirtree implements directory tree operations confined to a
// single managed root directory.
//
// The package provides the four core operations of the dirman tool:
//
// Create:
//   - Comma-separated batches expanded by SplitBatch
//   - Missing intermediate directories created automatically
//   - Idempotent; pre-existing directories are a notice, not an error
//
// Delete:
//   - The root itself is protected and can never be removed
//   - Non-empty directories require confirmation via a ConfirmFunc
//   - Per-child removal with partial-failure reporting (PartialError)
//
// Move:
//   - Relocates a whole subtree into a destination directory
//   - Missing destination parents created automatically
//   - Rejects moves onto the source or into its own subtree
//   - Single rename where the filesystem supports it, with a
//     copy-then-delete fallback across filesystem boundaries
//
// List:
//   - Depth-first, case-insensitive alphabetical tree rendering
//   - Branch connectors with one indentation column per depth
//   - Pure read; recomputed from the filesystem on every call
//
// Every user-supplied path passes through Resolve, which confines results
// to the managed root; escaping the root via ".." fails with
// ErrInvalidPath. The filesystem is the sole source of truth: no state is
// cached between operations.
package dirtree
