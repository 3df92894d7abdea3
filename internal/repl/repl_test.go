package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/endpoint-labs/dirman/dirtree"
)

// runScript feeds the script to a fresh shell over root and returns the
// combined output. The script is newline-separated input lines.
func runScript(t *testing.T, root, script string) string {
	t.Helper()
	mgr, err := dirtree.NewManager(root)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	var out bytes.Buffer
	sh := New(mgr, strings.NewReader(script), &out)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func dirExists(t *testing.T, root, rel string) bool {
	t.Helper()
	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

func TestCreateThenListShowsPath(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "create x/y/z\nlist\nexit\n")

	for _, rel := range []string{"x", "x/y", "x/y/z"} {
		if !dirExists(t, root, rel) {
			t.Errorf("expected %s to exist", rel)
		}
	}
	for _, name := range []string{"x/", "y/", "z/"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected listing to contain %q:\n%s", name, out)
		}
	}
}

func TestCommandTokenEquivalence(t *testing.T) {
	tests := []struct {
		name   string
		script string
		dir    string
	}{
		{name: "ordinal", script: "1 alpha\ne\n", dir: "alpha"},
		{name: "word", script: "create bravo\nexit\n", dir: "bravo"},
		{name: "letter", script: "c charlie\ne\n", dir: "charlie"},
		{name: "uppercase word", script: "CREATE delta\nEXIT\n", dir: "delta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			runScript(t, root, tt.script)
			if !dirExists(t, root, tt.dir) {
				t.Errorf("expected %s to be created", tt.dir)
			}
		})
	}
}

func TestBatchCreateTopLevel(t *testing.T) {
	root := t.TempDir()
	runScript(t, root, "c a,b,c\ne\n")

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected exactly 3 directories, got %d", len(entries))
	}
	for _, name := range []string{"a", "b", "c"} {
		if !dirExists(t, root, name) {
			t.Errorf("expected %s to exist", name)
		}
	}
}

func TestUnknownCommandContinuesLoop(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "frobnicate\nc kept\ne\n")

	if !strings.Contains(out, "Unknown command") {
		t.Errorf("expected unknown-command report:\n%s", out)
	}
	if !dirExists(t, root, "kept") {
		t.Error("loop should continue after an unknown command")
	}
}

func TestCreateAlreadyExistsNotice(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "c docs\nc docs\ne\n")

	if !strings.Contains(out, "already exists") {
		t.Errorf("expected already-exists notice:\n%s", out)
	}
	if !dirExists(t, root, "docs") {
		t.Error("docs should still exist")
	}
}

func TestDeleteRootProtected(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "c a\nd /\ne\n")

	if !strings.Contains(out, "root directory is protected") {
		t.Errorf("expected protected-root report:\n%s", out)
	}
	if !dirExists(t, root, "a") {
		t.Error("delete of root must be a no-op")
	}
}

func TestDeleteConfirmationRetryThenConfirm(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "c nest/egg\nd nest\nmaybe\nyes\ne\n")

	if !strings.Contains(out, "yes or no") {
		t.Errorf("expected a retry prompt for invalid confirmation input:\n%s", out)
	}
	if dirExists(t, root, "nest") {
		t.Error("nest should have been deleted after confirmation")
	}
	if !strings.Contains(out, "nest and all its contents have been deleted") {
		t.Errorf("expected a removal report:\n%s", out)
	}
}

func TestDeleteDeclined(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "c nest/egg\nd nest\nno\ne\n")

	if !strings.Contains(out, "cancelled") {
		t.Errorf("expected cancellation report:\n%s", out)
	}
	if !dirExists(t, root, "nest/egg") {
		t.Error("declined delete must leave the tree unchanged")
	}
}

func TestMoveIntoDirectory(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "c fruits,vegetables\nm fruits vegetables/\nl\ne\n")

	if !dirExists(t, root, "vegetables/fruits") {
		t.Error("expected vegetables/fruits after move")
	}
	if dirExists(t, root, "fruits") {
		t.Error("expected no top-level fruits after move")
	}
	if !strings.Contains(out, "Moved fruits to vegetables/fruits") {
		t.Errorf("expected move report:\n%s", out)
	}
}

func TestMovePromptsForMissingArguments(t *testing.T) {
	root := t.TempDir()
	runScript(t, root, "c fruits\nm\nfruits\nstash\ne\n")

	if !dirExists(t, root, "stash/fruits") {
		t.Error("expected stash/fruits after prompted move")
	}
}

func TestMoveIntoOwnSubtreeReported(t *testing.T) {
	root := t.TempDir()
	out := runScript(t, root, "c a/b\nm a a/b\ne\n")

	if !strings.Contains(out, "own subtree") {
		t.Errorf("expected subtree rejection report:\n%s", out)
	}
	if !dirExists(t, root, "a/b") {
		t.Error("rejected move must leave the tree unchanged")
	}
}

func TestEOFBehavesAsExit(t *testing.T) {
	root := t.TempDir()
	// No exit command; the script just ends.
	runScript(t, root, "c a\n")

	if !dirExists(t, root, "a") {
		t.Error("commands before EOF should still execute")
	}
}

func TestTreeStylerStable(t *testing.T) {
	first := TreeStyler("fruits/", true)
	second := TreeStyler("fruits/", true)
	if first != second {
		t.Error("a name should keep the same rendering across calls")
	}
}
