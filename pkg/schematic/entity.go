package schematic

import (
	"errors"
	"fmt"
	"math"
)

// Gear is the symbol kind eligible for gear ratios.
const Gear byte = '*'

// ErrNumberOverflow is returned when a digit run does not fit in an int64.
var ErrNumberOverflow = errors.New("number overflows int64")

// CellClass is the classification of a single grid cell.
type CellClass int

const (
	// CellFiller is an empty cell.
	CellFiller CellClass = iota
	// CellDigit is part of some Number.
	CellDigit
	// CellSymbol is a Symbol.
	CellSymbol
)

func (c CellClass) String() string {
	switch c {
	case CellFiller:
		return "filler"
	case CellDigit:
		return "digit"
	case CellSymbol:
		return "symbol"
	}

	return "unknown"
}

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Number is a maximal horizontal run of digits spanning columns [Start, End).
type Number struct {
	Value int64
	Row   int
	Start int
	End   int
}

// Key identifies a Number; two Numbers never share a key.
func (n Number) Key() Cell {
	return Cell{Row: n.Row, Col: n.Start}
}

// Len returns the number of cells the run occupies.
func (n Number) Len() int {
	return n.End - n.Start
}

// Symbol is any non-digit, non-filler cell.
type Symbol struct {
	Kind byte
	Row  int
	Col  int
}

// Cell returns the location of the symbol.
func (s Symbol) Cell() Cell {
	return Cell{Row: s.Row, Col: s.Col}
}

// IsGear reports whether the symbol is a gear candidate.
func (s Symbol) IsGear() bool {
	return s.Kind == Gear
}

// Entities holds everything extracted from a grid, in row-major order.
type Entities struct {
	Numbers []Number
	Symbols []Symbol
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ClassifyByte classifies a raw cell value.
func ClassifyByte(c byte) CellClass {
	switch {
	case isDigit(c):
		return CellDigit
	case c == Filler:
		return CellFiller
	default:
		return CellSymbol
	}
}

// Classify classifies the cell at (row, col). Out of range cells are filler.
func Classify(g *Grid, row, col int) CellClass {
	c, ok := g.Get(row, col)
	if !ok {
		return CellFiller
	}

	return ClassifyByte(c)
}

// Extract scans every row left to right and returns its Numbers and Symbols.
func Extract(g *Grid) (Entities, error) {
	var entities Entities

	for r := range g.rows {
		numbers, symbols, err := extractRow(g.rows[r], r)
		if err != nil {
			return Entities{}, err
		}

		entities.Numbers = append(entities.Numbers, numbers...)
		entities.Symbols = append(entities.Symbols, symbols...)
	}

	return entities, nil
}

func extractRow(row []byte, r int) ([]Number, []Symbol, error) {
	var (
		numbers []Number
		symbols []Symbol
	)

	start := -1

	var value int64

	flush := func(end int) {
		if start < 0 {
			return
		}

		numbers = append(numbers, Number{Value: value, Row: r, Start: start, End: end})
		start = -1
		value = 0
	}

	for col, c := range row {
		if isDigit(c) {
			if start < 0 {
				start = col
			}

			d := int64(c - '0')
			if value > (math.MaxInt64-d)/10 {
				return nil, nil, fmt.Errorf("row %d col %d: %w", r, start, ErrNumberOverflow)
			}

			value = value*10 + d

			continue
		}

		flush(col)

		if c != Filler {
			symbols = append(symbols, Symbol{Kind: c, Row: r, Col: col})
		}
	}

	// a number may end on the last column
	flush(len(row))

	return numbers, symbols, nil
}
