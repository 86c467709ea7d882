package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gondola.dev/pkg/gondola/internal/model"
	"gondola.dev/pkg/gondola/pkg/schematic"
)

const exampleSchematic = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return cmd, &out
}

func sampleRun() m.Run {
	return m.Run{
		ID:        "3f1c6a0e-0000-4000-8000-000000000000",
		StartedAt: time.Date(2023, 12, 3, 6, 0, 0, 0, time.UTC),
		Reports: []m.Report{
			{Day: 1, Title: "Trebuchet?!", Status: m.Cached, Answer: m.Answer{Part1: 142, Part2: 142}},
			{Day: 3, Title: "Gear Ratios", Status: m.Solved, Answer: m.Answer{Part1: 4361, Part2: 467835}, Duration: time.Millisecond},
			{Day: 4, Title: "Scratchcards", Status: m.Failed, Error: "input not found: day04"},
		},
	}
}

func TestRoles_Example(t *testing.T) {
	s, err := schematic.Scan(exampleSchematic)
	require.NoError(t, err)

	roles := Roles(s)
	require.Len(t, roles, 10)

	assert.Equal(t, []Role{RolePart, RolePart, RolePart}, roles[0][0:3], "467 is a part number")
	assert.Equal(t, []Role{RoleLoose, RoleLoose, RoleLoose}, roles[0][5:8], "114 is loose")
	assert.Equal(t, RoleGear, roles[1][3], "gear between 467 and 35")
	assert.Equal(t, RoleSymbol, roles[4][3], "star next to a single number")
	assert.Equal(t, RoleSymbol, roles[3][6])
	assert.Equal(t, RoleGear, roles[8][5])
	assert.Equal(t, RoleFiller, roles[0][3])
	assert.Equal(t, []Role{RoleLoose, RoleLoose}, roles[5][7:9], "58 is loose")
}

func TestSimpleUI_DisplayRun(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayRun(context.Background(), sampleRun()))

	got := out.String()
	assert.Contains(t, got, "Run 3f1c6a0e")
	assert.Contains(t, got, "Gear Ratios")
	assert.Contains(t, got, "467835")
	assert.Contains(t, got, "cached")
	assert.Contains(t, got, "1/1/1")
	assert.Contains(t, got, "day04: input not found: day04")
}

func TestSimpleUI_DisplayPuzzles(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayPuzzles(context.Background(), []PuzzleInfo{
		{Day: 3, Title: "Gear Ratios", InputPath: "input/day3.txt", HasInput: true},
		{Day: 4, Title: "Scratchcards", InputPath: "input/day4.txt"},
	})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "input/day3.txt")
	assert.NotContains(t, got, "input/day3.txt (missing)")
	assert.Contains(t, got, "input/day4.txt (missing)")
}

func TestSimpleUI_DisplaySchematic(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	s, err := schematic.Scan(exampleSchematic)
	require.NoError(t, err)

	require.NoError(t, ui.DisplaySchematic(context.Background(), SchematicView{Path: "input/day3.txt", Schematic: s}))

	got := out.String()
	assert.Contains(t, got, exampleSchematic)
	assert.Contains(t, got, "4361")
	assert.Contains(t, got, "467835")
}

func TestSimpleUI_DisplaySchematicWithOverflowingSums(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	s, err := schematic.Scan("9999999999*9999999999")
	require.NoError(t, err)

	require.NoError(t, ui.DisplaySchematic(context.Background(), SchematicView{Path: "big.txt", Schematic: s}))
	assert.Contains(t, out.String(), "overflow")
}

func TestSimpleUI_DisplayHistory(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayHistory(context.Background(), nil))
	assert.Equal(t, "no cached answers\n", out.String())

	out.Reset()

	err := ui.DisplayHistory(context.Background(), []m.CacheEntry{
		{Day: 3, InputHash: strings.Repeat("ab", 32), Answer: m.Answer{Part1: 4361, Part2: 467835}, SolvedAt: time.Now()},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "abababababab")
	assert.NotContains(t, out.String(), strings.Repeat("ab", 7))
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayDiff(context.Background(), ""))
	assert.Equal(t, "runs agree\n", out.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayRun(ctx, sampleRun()), context.Canceled)
	assert.Empty(t, out.String())
}

func TestTUI_DisplaySchematicWithoutTerminal(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)

	s, err := schematic.Scan(exampleSchematic)
	require.NoError(t, err)

	require.NoError(t, ui.DisplaySchematic(context.Background(), SchematicView{Path: "day3.txt", Schematic: s}))

	got := out.String()
	assert.Contains(t, got, exampleSchematic)
	assert.Contains(t, got, "part number")
	assert.Contains(t, got, "467835")
}

func TestTUI_DisplayRunAndDiff(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)

	require.NoError(t, ui.DisplayRun(context.Background(), sampleRun()))
	assert.Contains(t, out.String(), "Scratchcards")
	assert.Contains(t, out.String(), "input not found")

	out.Reset()

	require.NoError(t, ui.DisplayDiff(context.Background(), "--- a\n+++ b\n-day03 part1=1 part2=2\n+day03 part1=3 part2=4\n"))
	assert.Contains(t, out.String(), "+day03 part1=3 part2=4")
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
