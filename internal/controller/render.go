package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	m "gondola.dev/pkg/gondola/internal/model"
	"gondola.dev/pkg/gondola/pkg/schematic"
)

// Role is how a schematic cell is highlighted.
type Role int

// Cell roles, from least to most prominent.
const (
	RoleFiller Role = iota
	RoleLoose
	RolePart
	RoleSymbol
	RoleGear
)

// Roles classifies every cell of s. Digits of part numbers get RolePart,
// other digits RoleLoose. Gears touching exactly two numbers get RoleGear.
func Roles(s *schematic.Schematic) [][]Role {
	g := s.Grid()

	roles := make([][]Role, g.Height())
	for r := range roles {
		roles[r] = make([]Role, g.Width())
	}

	entities := s.Entities()

	for _, n := range entities.Numbers {
		role := RoleLoose
		if s.HasAdjacentSymbol(n) {
			role = RolePart
		}

		for c := n.Start; c < n.End; c++ {
			roles[n.Row][c] = role
		}
	}

	for _, sym := range entities.Symbols {
		roles[sym.Row][sym.Col] = RoleSymbol
	}

	for _, gear := range schematic.Gears(s.Resolver) {
		if gear.Valid() {
			roles[gear.Gear.Row][gear.Gear.Col] = RoleGear
		}
	}

	return roles
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func renderRunTable(run m.Run) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Day", "Title", "Status", "Part 1", "Part 2", "Duration"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	counts := map[m.Status]int{}

	for _, report := range run.Reports {
		counts[report.Status]++

		part1, part2 := formatAnswer(report.Answer.Part1), formatAnswer(report.Answer.Part2)
		if report.Status == m.Failed {
			part1, part2 = "-", "-"
		}

		table.Append([]string{
			report.Day.String(),
			report.Title,
			report.Status.String(),
			part1,
			part2,
			formatDuration(report.Duration),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d days", len(run.Reports)),
		"",
		fmt.Sprintf("%d/%d/%d", counts[m.Solved], counts[m.Cached], counts[m.Failed]),
		"", "", "",
	})

	table.Render()

	return buf.String()
}

func renderFailures(run m.Run) string {
	var buf bytes.Buffer

	for _, report := range run.Reports {
		if report.Status == m.Failed {
			fmt.Fprintf(&buf, "%s: %s\n", report.Day, report.Error)
		}
	}

	return buf.String()
}

func renderPuzzleTable(puzzles []PuzzleInfo) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Day", "Title", "Input"})

	for _, p := range puzzles {
		input := string(p.InputPath)
		if !p.HasInput {
			input += " (missing)"
		}

		table.Append([]string{p.Day.String(), p.Title, input})
	}

	table.Render()

	return buf.String()
}

func renderHistoryTable(entries []m.CacheEntry) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Day", "Input", "Part 1", "Part 2", "Solved at"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, e := range entries {
		table.Append([]string{
			e.Day.String(),
			shortHash(e.InputHash),
			formatAnswer(e.Answer.Part1),
			formatAnswer(e.Answer.Part2),
			e.SolvedAt.Local().Format(time.DateTime),
		})
	}

	table.Render()

	return buf.String()
}

func renderSchematicSummary(s *schematic.Schematic) string {
	var buf bytes.Buffer

	entities := s.Entities()
	partSum, gearSum := "overflow", "overflow"

	if result, err := s.Result(); err == nil {
		partSum, gearSum = formatAnswer(result.PartNumberSum), formatAnswer(result.GearRatioSum)
	}

	table := newTable(&buf, []string{"Numbers", "Part numbers", "Symbols", "Gears", "Part number sum", "Gear ratio sum"})

	validGears := 0

	for _, gear := range schematic.Gears(s.Resolver) {
		if gear.Valid() {
			validGears++
		}
	}

	table.Append([]string{
		strconv.Itoa(len(entities.Numbers)),
		strconv.Itoa(len(schematic.PartNumbers(s.Resolver))),
		strconv.Itoa(len(entities.Symbols)),
		strconv.Itoa(validGears),
		partSum,
		gearSum,
	})

	table.Render()

	return buf.String()
}

func formatAnswer(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}

	return hash
}
