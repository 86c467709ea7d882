// Package domain contains the puzzle runner workflow and its puzzle registry.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"gondola.dev/pkg/gondola/internal/adapter"
	"gondola.dev/pkg/gondola/internal/controller"
	m "gondola.dev/pkg/gondola/internal/model"
	"gondola.dev/pkg/gondola/pkg/schematic"
)

// SchematicDay is the day whose input is an engine schematic.
const SchematicDay m.Day = 3

// ErrDaysFailed is returned when at least one day of a run failed.
var ErrDaysFailed = errors.New("some days failed")

// SolveArgs contains the arguments for solving puzzles.
type SolveArgs struct {
	Days     []m.Day
	Inputs   m.Path
	Reports  m.Path
	UseCache bool
	Parallel int
}

// ListArgs contains the arguments for listing puzzles.
type ListArgs struct {
	Inputs m.Path
}

// ViewArgs contains the arguments for viewing a schematic. An empty Path
// views the schematic day's input inside Inputs.
type ViewArgs struct {
	Path   m.Path
	Inputs m.Path
}

// HistoryArgs contains the arguments for listing cached answers.
type HistoryArgs struct {
	Day   m.Day
	Limit int
}

// ReportArgs contains the arguments for showing the last saved run. When
// Against is set the run saved there is compared with the one in Reports.
type ReportArgs struct {
	Reports m.Path
	Against m.Path
}

// Workflow defines the commands of the puzzle runner.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	History(ctx context.Context, args HistoryArgs) error
	Report(ctx context.Context, args ReportArgs) error
}

type workflow struct {
	inputs   adapter.InputFSAdapter
	store    adapter.ReportStore
	cache    adapter.AnswerCache
	ui       controller.UI
	registry Registry
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	inputs adapter.InputFSAdapter,
	store adapter.ReportStore,
	cache adapter.AnswerCache,
	ui controller.UI,
	registry Registry,
) Workflow {
	return &workflow{
		inputs:   inputs,
		store:    store,
		cache:    cache,
		ui:       ui,
		registry: registry,
		now:      time.Now,
	}
}

// Solve solves the requested days concurrently, shows the run and saves it.
// A failing day does not stop the others.
func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	puzzles, err := w.resolvePuzzles(args.Days)
	if err != nil {
		return err
	}

	run := m.Run{
		ID:        uuid.NewString(),
		StartedAt: w.now().UTC(),
		Reports:   make([]m.Report, len(puzzles)),
	}

	slog.Info("starting run", "run", run.ID, "days", len(puzzles), "parallel", args.Parallel, "cache", args.UseCache)

	var group errgroup.Group
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	errs := make([]error, len(puzzles))

	for i, puzzle := range puzzles {
		group.Go(func() error {
			run.Reports[i], errs[i] = w.solveDay(ctx, puzzle, args)
			return nil
		})
	}

	_ = group.Wait()

	if err := w.ui.DisplayRun(ctx, run); err != nil {
		slog.Error("Failed to display run", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if err := w.store.SaveRun(ctx, args.Reports, run); err != nil {
		slog.Error("Failed to save run", "reports", args.Reports, "error", err)
		return fmt.Errorf("save run: %w", err)
	}

	var failures []error

	for i, err := range errs {
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", puzzles[i].Day, err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %w", ErrDaysFailed, errors.Join(failures...))
	}

	return nil
}

func (w *workflow) resolvePuzzles(days []m.Day) ([]Puzzle, error) {
	if len(days) == 0 {
		return w.registry.List(), nil
	}

	seen := make(map[m.Day]bool, len(days))
	puzzles := make([]Puzzle, 0, len(days))

	for _, day := range days {
		if seen[day] {
			continue
		}

		seen[day] = true

		puzzle, err := w.registry.Get(day)
		if err != nil {
			return nil, err
		}

		puzzles = append(puzzles, puzzle)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].Day < puzzles[j].Day
	})

	return puzzles, nil
}

// solveDay always returns a report. The error is set when the report failed.
func (w *workflow) solveDay(ctx context.Context, puzzle Puzzle, args SolveArgs) (m.Report, error) {
	report := m.Report{Day: puzzle.Day, Title: puzzle.Title}
	start := w.now()

	fail := func(err error) (m.Report, error) {
		slog.Error("Failed to solve", "day", puzzle.Day, "error", err)

		report.Status = m.Failed
		report.Error = err.Error()
		report.Duration = w.now().Sub(start)

		return report, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	input, err := w.inputs.ReadInput(ctx, args.Inputs, puzzle.Day)
	if err != nil {
		return fail(err)
	}

	report.InputHash = input.Hash

	if args.UseCache {
		answer, ok, err := w.cache.Lookup(ctx, puzzle.Day, input.Hash)
		if err != nil {
			slog.Warn("answer cache lookup failed", "day", puzzle.Day, "error", err)
		}

		if ok {
			slog.Debug("answer cache hit", "day", puzzle.Day, "hash", input.Hash)

			report.Status = m.Cached
			report.Answer = answer
			report.Duration = w.now().Sub(start)

			return report, nil
		}
	}

	answer, err := puzzle.Solve(input.Content)
	if err != nil {
		return fail(err)
	}

	report.Status = m.Solved
	report.Answer = answer
	report.Duration = w.now().Sub(start)

	slog.Info("solved", "day", puzzle.Day, "part1", answer.Part1, "part2", answer.Part2, "duration", report.Duration)

	entry := m.CacheEntry{Day: puzzle.Day, InputHash: input.Hash, Answer: answer, SolvedAt: w.now().UTC()}
	if err := w.cache.Store(ctx, entry); err != nil {
		slog.Warn("answer cache store failed", "day", puzzle.Day, "error", err)
	}

	return report, nil
}

// List shows every registered puzzle and whether its input is present.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	puzzles := w.registry.List()
	infos := make([]controller.PuzzleInfo, 0, len(puzzles))

	for _, puzzle := range puzzles {
		path := w.inputs.InputPath(args.Inputs, puzzle.Day)

		exists, err := w.inputs.Exists(ctx, path)
		if err != nil {
			return fmt.Errorf("check input %s: %w", path, err)
		}

		infos = append(infos, controller.PuzzleInfo{
			Day:       puzzle.Day,
			Title:     puzzle.Title,
			InputPath: path,
			HasInput:  exists,
		})
	}

	return w.ui.DisplayPuzzles(ctx, infos)
}

// View scans a schematic and shows it with its part numbers and gears marked.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	path := args.Path
	if path == "" {
		path = w.inputs.InputPath(args.Inputs, SchematicDay)
	}

	content, err := w.inputs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read schematic", "path", path, "error", err)
		return fmt.Errorf("read schematic %s: %w", path, err)
	}

	s, err := schematic.Scan(string(content))
	if err != nil {
		return fmt.Errorf("scan schematic %s: %w", path, err)
	}

	return w.ui.DisplaySchematic(ctx, controller.SchematicView{Path: path, Schematic: s})
}

// History shows answers remembered by the answer cache.
func (w *workflow) History(ctx context.Context, args HistoryArgs) error {
	entries, err := w.cache.History(ctx, args.Day, args.Limit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	return w.ui.DisplayHistory(ctx, entries)
}

// Report shows the last saved run, or its differences from another run.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	run, err := w.store.LoadRun(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}

	if args.Against == "" {
		return w.ui.DisplayRun(ctx, run)
	}

	other, err := w.store.LoadRun(ctx, args.Against)
	if err != nil {
		return fmt.Errorf("load run %s: %w", args.Against, err)
	}

	diff, err := DiffRuns(other, run, string(args.Against), string(args.Reports))
	if err != nil {
		return err
	}

	return w.ui.DisplayDiff(ctx, diff)
}

// DiffRuns returns a unified diff of the answers in two runs. It is empty
// when both runs agree.
func DiffRuns(from, to m.Run, fromName, toName string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(answerLines(from)),
		B:        difflib.SplitLines(answerLines(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff runs: %w", err)
	}

	return text, nil
}

func answerLines(run m.Run) string {
	var b strings.Builder

	for _, report := range run.Reports {
		if report.Status == m.Failed {
			fmt.Fprintf(&b, "%s failed: %s\n", report.Day, report.Error)
			continue
		}

		fmt.Fprintf(&b, "%s part1=%d part2=%d\n", report.Day, report.Answer.Part1, report.Answer.Part2)
	}

	return b.String()
}
