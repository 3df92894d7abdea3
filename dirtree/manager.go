package dirtree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Manager performs directory operations confined to a single root
// directory. The filesystem is the sole source of truth; no state is
// cached between operations.
type Manager struct {
	root string
}

// NewManager returns a Manager rooted at the given directory, creating it
// if necessary. The root is fixed for the lifetime of the Manager.
func NewManager(root string) (*Manager, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("cannot open root %s: %w", root, err)
	}
	return &Manager{root: abs}, nil
}

// Root returns the absolute path of the managed root.
func (m *Manager) Root() string { return m.root }

// CreateResult reports the outcome for a single path of a create batch.
// Existed marks an already-present directory, which is a notice rather
// than a failure.
type CreateResult struct {
	Path    string
	Existed bool
	Err     error
}

// Create makes every directory named by the comma-separated batch,
// including missing intermediate directories. A failing or invalid path
// does not abort the rest of the batch.
func (m *Manager) Create(batch string) []CreateResult {
	paths := SplitBatch(batch)
	results := make([]CreateResult, 0, len(paths))
	for _, p := range paths {
		results = append(results, m.createOne(p))
	}
	return results
}

func (m *Manager) createOne(rel string) CreateResult {
	res := CreateResult{Path: rel}
	abs, err := Resolve(m.root, rel)
	if err != nil {
		res.Err = err
		return res
	}
	if info, err := os.Stat(abs); err == nil {
		if info.IsDir() {
			res.Existed = true
			return res
		}
		res.Err = fmt.Errorf("%w: %s exists and is not a directory", ErrInvalidPath, rel)
		return res
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		res.Err = err
	}
	return res
}

// ConfirmFunc is consulted before a non-empty directory is removed.
// Returning false cancels the delete.
type ConfirmFunc func(target string) bool

// Delete removes the directory at rel together with everything under it.
// The root itself is protected and can never be deleted. When the target
// is non-empty, confirm decides whether to proceed; a declined delete
// returns cancelled=true with no error and no filesystem change.
//
// Children are removed one at a time so that a mid-removal failure can be
// reported precisely: the returned *PartialError lists every child that
// was removed before the failing one.
func (m *Manager) Delete(rel string, confirm ConfirmFunc) (cancelled bool, err error) {
	abs, err := Resolve(m.root, rel)
	if err != nil {
		return false, err
	}
	if abs == m.root {
		return false, ErrProtectedRoot
	}

	info, err := os.Lstat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s is not a directory", ErrNotFound, rel)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return false, err
	}
	if len(entries) > 0 && confirm != nil && !confirm(rel) {
		return true, nil
	}

	var removed []string
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(abs, e.Name())); err != nil {
			return false, &PartialError{Removed: removed, Err: err}
		}
		removed = append(removed, e.Name())
	}
	if err := os.Remove(abs); err != nil {
		return false, &PartialError{Removed: removed, Err: err}
	}
	return false, nil
}

// Move relocates the directory at src, with its entire subtree, into the
// directory named by dst. Missing parents of dst are created; the moved
// directory keeps its base name. The result is the new root-relative path
// of the moved directory.
//
// Moving a directory onto itself or into its own subtree fails with
// ErrInvalidTarget and leaves the filesystem unchanged. A destination that
// already contains an entry with the source's name fails with ErrExists.
func (m *Manager) Move(src, dst string) (moved string, err error) {
	absSrc, err := Resolve(m.root, src)
	if err != nil {
		return "", err
	}
	if absSrc == m.root {
		return "", ErrProtectedRoot
	}
	if _, err := os.Lstat(absSrc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, src)
		}
		return "", err
	}

	absDst, err := Resolve(m.root, dst)
	if err != nil {
		return "", err
	}
	if absDst == absSrc || strings.HasPrefix(absDst, absSrc+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidTarget, dst)
	}

	if err := os.MkdirAll(absDst, 0755); err != nil {
		return "", err
	}
	target := filepath.Join(absDst, filepath.Base(absSrc))
	if _, err := os.Lstat(target); err == nil {
		return "", fmt.Errorf("%w: %s already contains %s", ErrExists, dst, filepath.Base(absSrc))
	}

	if err := os.Rename(absSrc, target); err != nil {
		if !errors.Is(err, syscall.EXDEV) {
			return "", err
		}
		// Rename cannot cross filesystems; fall back to copy-then-delete.
		if err := copyTree(absSrc, target); err != nil {
			return "", err
		}
		if err := os.RemoveAll(absSrc); err != nil {
			return "", err
		}
	}

	relTarget, err := filepath.Rel(m.root, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relTarget), nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// List renders the subtree at rel (the root when rel is empty or "/") to w
// using the given renderer. A nil renderer renders with defaults.
func (m *Manager) List(w io.Writer, rel string, r *Renderer) error {
	start := m.root
	if rel != "" && rel != "/" {
		abs, err := Resolve(m.root, rel)
		if err != nil {
			return err
		}
		start = abs
	}
	info, err := os.Stat(start)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotFound, rel)
	}
	if r == nil {
		r = &Renderer{}
	}
	return r.Render(w, start)
}
