// Package repl implements the interactive shell for dirman.
//
// The shell is a synchronous read-eval-print loop over a dirtree.Manager:
// it blocks on a line of input, parses a command token plus arguments,
// executes the matching tree operation, reports the outcome, and repeats
// until the exit command or EOF. Every operation error is caught at the
// loop boundary and reported; none is fatal.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/taigrr/colorhash"

	"github.com/endpoint-labs/dirman/dirtree"
)

// Op identifies one of the shell's commands.
type Op int

const (
	OpCreate Op = iota
	OpDelete
	OpMove
	OpList
	OpHelp
	OpExit
)

// commands maps every accepted token to its operation. Each command is
// reachable by ordinal number, full word, or first letter; tokens are
// matched case-insensitively.
var commands = map[string]Op{
	"1": OpCreate, "create": OpCreate, "c": OpCreate,
	"2": OpDelete, "delete": OpDelete, "d": OpDelete,
	"3": OpMove, "move": OpMove, "m": OpMove,
	"4": OpList, "list": OpList, "l": OpList,
	"5": OpHelp, "help": OpHelp, "h": OpHelp,
	"6": OpExit, "exit": OpExit, "e": OpExit,
}

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleNotice  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	stylePrompt  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleHeading = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleRule    = lipgloss.NewStyle().Faint(true)
)

// treePalette holds the colors directory names are hashed into.
var treePalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("123")),
}

// TreeStyler colors a tree entry by hashing its name into the palette, so
// a directory keeps the same color across listings. Regular files are
// rendered faint.
func TreeStyler(name string, isDir bool) string {
	if !isDir {
		return styleRule.Render(name)
	}
	idx := colorhash.HashString(name) % len(treePalette)
	if idx < 0 {
		idx += len(treePalette)
	}
	return treePalette[idx].Render(name)
}

// Shell runs the interactive command loop over a dirtree.Manager.
type Shell struct {
	mgr      *dirtree.Manager
	in       *bufio.Scanner
	out      io.Writer
	renderer *dirtree.Renderer
}

// New returns a Shell reading commands from in and reporting to out.
func New(mgr *dirtree.Manager, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		mgr:      mgr,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: &dirtree.Renderer{Style: TreeStyler},
	}
}

// Run processes commands until the exit command. EOF on the input behaves
// as exit so piped scripts terminate cleanly. The returned error is only
// non-nil for an input read failure.
func (s *Shell) Run() error {
	s.banner()
	for {
		line, ok := s.prompt("Enter command: ")
		if !ok {
			return s.in.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			s.errorf("Invalid command. Please try again.")
			s.rule()
			continue
		}

		op, ok := commands[strings.ToLower(fields[0])]
		if !ok {
			s.errorf("Unknown command %q. Type 'help' for usage.", fields[0])
			s.rule()
			continue
		}

		args := fields[1:]
		switch op {
		case OpCreate:
			s.create(args)
		case OpDelete:
			s.delete(args)
		case OpMove:
			s.move(args)
		case OpList:
			s.list()
		case OpHelp:
			s.help()
		case OpExit:
			fmt.Fprintln(s.out, "Thank you for using dirman.")
			return nil
		}
	}
}

func (s *Shell) create(args []string) {
	path, ok := s.argOrPrompt(args, 0, "Enter path: ")
	if !ok {
		return
	}

	var created int
	for _, res := range s.mgr.Create(path) {
		switch {
		case res.Err != nil:
			s.errorf("Cannot create %s - %v", res.Path, res.Err)
		case res.Existed:
			s.noticef("Directory %s already exists", res.Path)
		default:
			s.successf("Directory %s created successfully", res.Path)
			created++
		}
	}
	if created > 0 {
		s.tree()
	}
	s.rule()
}

func (s *Shell) delete(args []string) {
	path, ok := s.argOrPrompt(args, 0, "Enter path: ")
	if !ok {
		return
	}

	cancelled, err := s.mgr.Delete(path, s.confirm)
	switch {
	case cancelled:
		s.noticef("Deletion cancelled.")
	case err != nil:
		s.reportDeleteError(path, err)
	default:
		s.removedf("Directory %s and all its contents have been deleted.", path)
		s.tree()
	}
	s.rule()
}

func (s *Shell) reportDeleteError(path string, err error) {
	var partial *dirtree.PartialError
	switch {
	case errors.As(err, &partial):
		s.errorf("Cannot fully delete %s - %v", path, partial.Err)
		for _, name := range partial.Removed {
			s.noticef("  removed before the failure: %s", name)
		}
	case errors.Is(err, dirtree.ErrProtectedRoot):
		s.errorf("Cannot delete %s - the root directory is protected", path)
	case errors.Is(err, dirtree.ErrNotFound):
		s.errorf("Cannot delete %s - path does not exist", path)
	case errors.Is(err, fs.ErrPermission):
		s.errorf("Cannot delete %s - permission denied", path)
	default:
		s.errorf("Cannot delete %s - %v", path, err)
	}
}

func (s *Shell) move(args []string) {
	src, ok := s.argOrPrompt(args, 0, "Enter source path: ")
	if !ok {
		return
	}
	dst, ok := s.argOrPrompt(args, 1, "Enter destination path: ")
	if !ok {
		return
	}

	moved, err := s.mgr.Move(src, dst)
	switch {
	case errors.Is(err, dirtree.ErrNotFound):
		s.errorf("Cannot move %s - path does not exist", src)
	case errors.Is(err, dirtree.ErrInvalidTarget):
		s.errorf("Cannot move %s - cannot move a directory into its own subtree", src)
	case errors.Is(err, dirtree.ErrExists):
		s.errorf("Cannot move %s - %v", src, err)
	case err != nil:
		s.errorf("Cannot move %s - %v", src, err)
	default:
		s.successf("Moved %s to %s", src, moved)
		s.tree()
	}
	s.rule()
}

func (s *Shell) list() {
	s.tree()
	s.rule()
}

func (s *Shell) tree() {
	fmt.Fprintln(s.out, styleHeading.Render("List"))
	if err := s.mgr.List(s.out, "", s.renderer); err != nil {
		s.errorf("Cannot list directories - %v", err)
	}
}

// confirm asks a three-way question: yes/y proceeds, no/n declines, and
// anything else re-asks. EOF declines.
func (s *Shell) confirm(target string) bool {
	for {
		answer, ok := s.prompt(fmt.Sprintf("Are you sure you want to delete %s and its subdirectories? (yes/no): ", target))
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		default:
			s.noticef("Please answer yes or no.")
		}
	}
}

// argOrPrompt returns args[i] when present, otherwise prompts for it.
func (s *Shell) argOrPrompt(args []string, i int, label string) (string, bool) {
	if i < len(args) {
		return args[i], true
	}
	for {
		line, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, true
		}
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, stylePrompt.Render(label))
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) successf(format string, args ...any) {
	fmt.Fprintln(s.out, styleSuccess.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(s.out, styleError.Render(fmt.Sprintf(format, args...)))
}

// removedf reports a completed destructive action. Distinct from errorf so
// the error style stays reserved for failures.
func (s *Shell) removedf(format string, args ...any) {
	fmt.Fprintln(s.out, styleRemoved.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) noticef(format string, args ...any) {
	fmt.Fprintln(s.out, styleNotice.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) rule() {
	fmt.Fprintln(s.out, styleRule.Render(strings.Repeat("=", 80)))
}

func (s *Shell) banner() {
	s.rule()
	fmt.Fprintln(s.out, styleHeading.Render("dirman - interactive directory manager"))
	fmt.Fprintf(s.out, "Managing %s\n", s.mgr.Root())
	s.rule()
	fmt.Fprintln(s.out, "1.", styleSuccess.Render("Create Directory"))
	fmt.Fprintln(s.out, "2.", styleError.Render("Delete Directory"))
	fmt.Fprintln(s.out, "3.", styleNotice.Render("Move Directory"))
	fmt.Fprintln(s.out, "4.", styleHeading.Render("List Directories"))
	fmt.Fprintln(s.out, "5.", "Help")
	fmt.Fprintln(s.out, "6.", "Exit")
	s.rule()
}

func (s *Shell) help() {
	s.rule()
	fmt.Fprintln(s.out, styleHeading.Render("Help"))
	s.rule()
	fmt.Fprintln(s.out, styleSuccess.Render("Create (c) - Create a new directory"))
	fmt.Fprintln(s.out, "  Usage: 'c family' or 'c' then enter the path when prompted")
	fmt.Fprintln(s.out, "  Batches:")
	fmt.Fprintln(s.out, "    - Root level:   'c fruits,family,number'")
	fmt.Fprintln(s.out, "    - Nested level: 'c fruits/citrus/lemon,lime,orange'")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, styleError.Render("Delete (d) - Remove a directory and its contents"))
	fmt.Fprintln(s.out, "  Usage: 'd family'. Non-empty directories ask for confirmation.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, styleNotice.Render("Move (m) - Move a directory into a new location"))
	fmt.Fprintln(s.out, "  Usage: 'm source destination'. Missing destination parents are created.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, styleHeading.Render("List (l) - Show the directory tree"))
	fmt.Fprintln(s.out, "  Usage: 'l'. Directories are sorted alphabetically.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Help (h) - Show this help message")
	fmt.Fprintln(s.out, "Exit (e) - Exit the program")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Commands also accept their ordinal: 1=create 2=delete 3=move 4=list 5=help 6=exit")
	s.rule()
}
