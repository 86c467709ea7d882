package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gondola.dev/pkg/gondola/internal/adapter"
	"gondola.dev/pkg/gondola/internal/controller"
	"gondola.dev/pkg/gondola/internal/domain"
	domainmocks "gondola.dev/pkg/gondola/internal/domain/mocks"
	m "gondola.dev/pkg/gondola/internal/model"
)

const gearExample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

func TestRunCmd_ParsesDaysAndFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(newRunCmd())

	mockWorkflow.EXPECT().Solve(mock.Anything, domain.SolveArgs{
		Days:     []m.Day{3, 4},
		Inputs:   m.Path(defaultInputsDir),
		Reports:  m.Path(defaultReportsDir),
		UseCache: true,
		Parallel: 2,
	}).Return(nil).Once()

	cmd.SetArgs(withLogFile(t, "run", "--parallel", "2", "3", "day04"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_NoCacheAndDirectories(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(newRunCmd())

	mockWorkflow.EXPECT().Solve(mock.Anything, mock.MatchedBy(func(args domain.SolveArgs) bool {
		return len(args.Days) == 0 &&
			args.Inputs == "puzzles" &&
			args.Reports == "out" &&
			!args.UseCache
	})).Return(nil).Once()

	cmd.SetArgs(withLogFile(t, "run", "--no-cache", "-i", "puzzles", "-o", "out"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_InvalidDay(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(newRunCmd())

	cmd.SetArgs(withLogFile(t, "run", "christmas"))
	err := cmd.Execute()
	require.ErrorIs(t, err, m.ErrInvalidDay)

	mockWorkflow.AssertNotCalled(t, "Solve", mock.Anything, mock.Anything)
}

func TestRunCmd_SolvesFromDiskAndCaches(t *testing.T) {
	dir := t.TempDir()
	inputs := filepath.Join(dir, "input")
	reports := filepath.Join(dir, "reports")

	require.NoError(t, os.MkdirAll(inputs, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "day3.txt"), []byte(gearExample), 0o600))

	cache := adapter.NewSQLiteAnswerCache(":memory:")
	t.Cleanup(func() { _ = cache.Close() })

	cmd, out := newTestRoot(newRunCmd(), newReportCmd())
	useWorkflow(t, domain.NewWorkflow(
		adapter.NewLocalInputFSAdapter(adapter.DefaultInputPattern),
		adapter.NewReportStore(),
		cache,
		controller.NewSimpleUI(cmd),
		domain.DefaultRegistry(),
	))

	cmd.SetArgs(withLogFile(t, "run", "3", "-i", inputs, "-o", reports))
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "4361")
	assert.Contains(t, out.String(), "467835")
	assert.Contains(t, out.String(), "solved")
	assert.FileExists(t, filepath.Join(reports, adapter.ReportFileName))

	out.Reset()

	cmd.SetArgs(withLogFile(t, "run", "3", "-i", inputs, "-o", reports))
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "cached")

	out.Reset()

	cmd.SetArgs(withLogFile(t, "run", "4", "-i", inputs, "-o", reports))
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrDaysFailed)
	require.ErrorIs(t, err, adapter.ErrInputNotFound)
	assert.Contains(t, out.String(), "failed")

	out.Reset()

	cmd.SetArgs(withLogFile(t, "report", "-o", reports))
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Scratchcards")
}
