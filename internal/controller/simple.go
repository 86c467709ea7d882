package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "gondola.dev/pkg/gondola/internal/model"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRun prints every day of run and the errors of failed days.
func (s *SimpleUI) DisplayRun(ctx context.Context, run m.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Run %s\n\n%s", run.ID, renderRunTable(run))

	if failures := renderFailures(run); failures != "" {
		s.printf("\n%s", failures)
	}

	return nil
}

// DisplayPuzzles prints the registered puzzles.
func (s *SimpleUI) DisplayPuzzles(ctx context.Context, puzzles []PuzzleInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderPuzzleTable(puzzles))

	return nil
}

// DisplaySchematic prints the raw grid followed by its sums.
func (s *SimpleUI) DisplaySchematic(ctx context.Context, view SchematicView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n\n%s\n\n%s", view.Path, view.Schematic.Grid(), renderSchematicSummary(view.Schematic))

	return nil
}

// DisplayHistory prints cached answers.
func (s *SimpleUI) DisplayHistory(ctx context.Context, entries []m.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(entries) == 0 {
		s.printf("no cached answers\n")
		return nil
	}

	s.printf("%s", renderHistoryTable(entries))

	return nil
}

// DisplayDiff prints a run comparison.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("runs agree\n")
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
