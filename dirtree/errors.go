package dirtree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for package dirtree.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Path resolution errors
	ErrInvalidPath = errors.New("invalid path")

	// Operation errors
	ErrExists        = errors.New("directory already exists")
	ErrNotFound      = errors.New("path does not exist")
	ErrProtectedRoot = errors.New("the root directory cannot be removed")
	ErrInvalidTarget = errors.New("destination is inside the source directory")
)

// PartialError reports a delete that failed after some children were
// already removed. Removed holds the names of the entries that are gone;
// Err is the failure that stopped the removal.
type PartialError struct {
	Removed []string
	Err     error
}

func (e *PartialError) Error() string {
	if len(e.Removed) == 0 {
		return fmt.Sprintf("delete failed: %v", e.Err)
	}
	return fmt.Sprintf("delete failed after removing %s: %v",
		strings.Join(e.Removed, ", "), e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
