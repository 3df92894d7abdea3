package dirtree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Styler colors a single rendered entry name. A nil Styler renders plain
// text; color is cosmetic and never part of the functional contract.
type Styler func(name string, isDir bool) string

// Renderer writes tree-style listings of a directory subtree with branch
// connectors, one indentation column per depth. Directories only unless
// IncludeFiles is set.
type Renderer struct {
	IncludeFiles bool
	Style        Styler
}

// Render writes the subtree rooted at the start directory to w. The start
// path itself is printed as the header line. Entries are sorted
// alphabetically, case-insensitive, with the raw name as tiebreaker. The
// listing is recomputed from the filesystem on every call.
func (r *Renderer) Render(w io.Writer, start string) error {
	if _, err := fmt.Fprintln(w, filepath.Clean(start)); err != nil {
		return err
	}
	return r.renderDir(w, start, "")
}

func (r *Renderer) renderDir(w io.Writer, dir, prefix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	entries = r.visible(entries)

	for i, e := range entries {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(entries)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		if r.Style != nil {
			name = r.Style(name, e.IsDir())
		}
		if _, err := fmt.Fprintln(w, prefix+connector+name); err != nil {
			return err
		}

		if e.IsDir() {
			if err := r.renderDir(w, filepath.Join(dir, e.Name()), childPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) visible(entries []os.DirEntry) []os.DirEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.IsDir() || r.IncludeFiles {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := strings.ToLower(kept[i].Name()), strings.ToLower(kept[j].Name())
		if a == b {
			return kept[i].Name() < kept[j].Name()
		}
		return a < b
	})
	return kept
}
