package dirtree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// invalidSegmentChars are rejected anywhere in a path segment.
const invalidSegmentChars = `\:*?"<>|`

// SplitBatch expands a comma-separated create target into individual
// relative paths. A comma before the first slash splits the whole string
// into independent paths; a comma after the last slash fans the tail names
// out under the shared base:
//
//	"a,b,c"                    -> a, b, c
//	"fruits/citrus/lemon,lime" -> fruits/citrus/lemon, fruits/citrus/lime
//	"fruits,veggies/green"     -> fruits, veggies/green
//
// Blank elements are dropped.
func SplitBatch(s string) []string {
	if !strings.Contains(s, ",") {
		return []string{s}
	}

	slash := strings.Index(s, "/")
	if slash == -1 || strings.Index(s, ",") < slash {
		var paths []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}

	base := s[:strings.LastIndex(s, "/")+1]
	var paths []string
	for _, name := range strings.Split(s[len(base):], ",") {
		if name = strings.TrimSpace(name); name != "" {
			paths = append(paths, base+name)
		}
	}
	return paths
}

// Resolve joins a user-supplied slash-separated path onto root and verifies
// the result stays inside it. "/" and "." resolve to root itself. It fails
// with ErrInvalidPath for empty input, for segments containing reserved
// characters, and for any path that escapes the root after cleaning.
func Resolve(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for _, seg := range strings.Split(rel, "/") {
		if strings.ContainsAny(seg, invalidSegmentChars) {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, rel)
		}
	}

	cleanRoot := filepath.Clean(root)
	joined := filepath.Join(cleanRoot, filepath.FromSlash(rel))

	sub, err := filepath.Rel(cleanRoot, joined)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, rel)
	}
	if sub == ".." || strings.HasPrefix(filepath.ToSlash(sub), "../") {
		return "", fmt.Errorf("%w: %q escapes the managed root", ErrInvalidPath, rel)
	}
	return joined, nil
}
