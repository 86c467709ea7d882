// Package controller provides output adapters for displaying puzzle runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gondola.dev/pkg/gondola/internal/model"
	"gondola.dev/pkg/gondola/pkg/schematic"
)

// PuzzleInfo describes a registered puzzle and its input file.
type PuzzleInfo struct {
	Day       m.Day
	Title     string
	InputPath m.Path
	HasInput  bool
}

// SchematicView is a scanned schematic ready to be displayed.
type SchematicView struct {
	Path      m.Path
	Schematic *schematic.Schematic
}

// UI defines the interface for displaying runs, puzzles and schematics.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRun(ctx context.Context, run m.Run) error
	DisplayPuzzles(ctx context.Context, puzzles []PuzzleInfo) error
	DisplaySchematic(ctx context.Context, view SchematicView) error
	DisplayHistory(ctx context.Context, entries []m.CacheEntry) error
	DisplayDiff(ctx context.Context, diff string) error
}

// NewUI picks the TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
