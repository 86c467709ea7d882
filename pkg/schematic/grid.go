// Package schematic scans engine schematics: rectangular character grids of
// digits, filler cells and symbols. It extracts part numbers and symbols,
// resolves their 8-directional adjacency and folds the result into the
// part-number and gear-ratio sums.
package schematic

import (
	"errors"
	"fmt"
	"strings"
)

// Filler is the character that marks an empty cell.
const Filler byte = '.'

var (
	// ErrMalformedGrid is matched by every grid construction failure.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrEmptyInput is returned when no rows remain after dropping empty lines.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrMalformedGrid)
)

// MalformedGridError reports a row whose width differs from the first row.
type MalformedGridError struct {
	Row   int
	Width int
	Want  int
}

func (e *MalformedGridError) Error() string {
	return fmt.Sprintf("malformed grid: row %d has width %d, want %d", e.Row, e.Width, e.Want)
}

// Is lets errors.Is match MalformedGridError against ErrMalformedGrid.
func (e *MalformedGridError) Is(target error) bool {
	return target == ErrMalformedGrid
}

// Grid is an immutable rectangular matrix of single-byte cells.
type Grid struct {
	rows  [][]byte
	width int
}

// Parse builds a Grid from newline separated rows.
//
// Carriage returns at line ends are dropped and empty lines before the first
// and after the last row are ignored. A row of spaces is a row of symbols.
// Any other width mismatch, including an empty line between rows, is a
// *MalformedGridError.
func Parse(raw string) (*Grid, error) {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	first, last := 0, len(lines)
	for first < last && lines[first] == "" {
		first++
	}

	for last > first && lines[last-1] == "" {
		last--
	}

	if first == last {
		return nil, ErrEmptyInput
	}

	lines = lines[first:last]
	width := len(lines[0])
	rows := make([][]byte, 0, len(lines))

	for i, line := range lines {
		if len(line) != width {
			return nil, &MalformedGridError{Row: i, Width: len(line), Want: width}
		}

		rows = append(rows, []byte(line))
	}

	return &Grid{rows: rows, width: width}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.width
}

// Get returns the cell at (row, col). The second result is false when the
// coordinate lies outside the grid.
func (g *Grid) Get(row, col int) (byte, bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}

	return g.rows[row][col], true
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) ([]byte, bool) {
	if r < 0 || r >= len(g.rows) {
		return nil, false
	}

	row := make([]byte, g.width)
	copy(row, g.rows[r])

	return row, true
}

func (g *Grid) String() string {
	var b strings.Builder

	b.Grow(len(g.rows) * (g.width + 1))

	for i, row := range g.rows {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.Write(row)
	}

	return b.String()
}
