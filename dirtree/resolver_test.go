package dirtree

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitBatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single path",
			input:    "fruits",
			expected: []string{"fruits"},
		},
		{
			name:     "top-level batch",
			input:    "a,b,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "nested batch shares base",
			input:    "fruits/citrus/lemon,lime,orange",
			expected: []string{"fruits/citrus/lemon", "fruits/citrus/lime", "fruits/citrus/orange"},
		},
		{
			name:     "comma before first slash splits plainly",
			input:    "fruits,veggies/green,red",
			expected: []string{"fruits", "veggies/green", "red"},
		},
		{
			name:     "blank elements dropped",
			input:    "a, ,b,",
			expected: []string{"a", "b"},
		},
		{
			name:     "whitespace trimmed",
			input:    " a , b ",
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitBatch(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitBatch(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		rel      string
		expected string // relative to root; ignored when wantErr
		wantErr  bool
	}{
		{name: "simple", rel: "a", expected: "a"},
		{name: "nested", rel: "a/b/c", expected: "a/b/c"},
		{name: "slash is root", rel: "/", expected: "."},
		{name: "dot is root", rel: ".", expected: "."},
		{name: "internal dotdot stays inside", rel: "a/../b", expected: "b"},
		{name: "empty", rel: "", wantErr: true},
		{name: "whitespace only", rel: "   ", wantErr: true},
		{name: "escapes root", rel: "..", wantErr: true},
		{name: "escapes root nested", rel: "a/../../b", wantErr: true},
		{name: "reserved character", rel: "a*b", wantErr: true},
		{name: "reserved character nested", rel: "ok/b?d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(root, tt.rel)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) = %q, expected error", tt.rel, got)
				}
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("Resolve(%q) error = %v, expected ErrInvalidPath", tt.rel, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.rel, err)
			}
			expected := filepath.Join(root, filepath.FromSlash(tt.expected))
			if got != expected {
				t.Errorf("Resolve(%q) = %q, expected %q", tt.rel, got, expected)
			}
		})
	}
}
