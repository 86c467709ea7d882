package schematic

import (
	"fmt"
	"math"
)

// GearRatio is a gear together with the Numbers touching it.
type GearRatio struct {
	Gear    Symbol
	Numbers []Number
}

// Valid reports whether exactly two Numbers touch the gear.
func (g GearRatio) Valid() bool {
	return len(g.Numbers) == 2
}

// Ratio is the product of the two Numbers, or 0 when the gear is not valid.
// A product that does not fit in int64 is ErrNumberOverflow.
func (g GearRatio) Ratio() (int64, error) {
	if !g.Valid() {
		return 0, nil
	}

	a, b := g.Numbers[0].Value, g.Numbers[1].Value
	if a != 0 && b > math.MaxInt64/a {
		return 0, fmt.Errorf("gear at row %d col %d: %w", g.Gear.Row, g.Gear.Col, ErrNumberOverflow)
	}

	return a * b, nil
}

// PartNumbers returns every Number adjacent to at least one Symbol.
func PartNumbers(r *Resolver) []Number {
	var parts []Number

	for _, n := range r.entities.Numbers {
		if r.HasAdjacentSymbol(n) {
			parts = append(parts, n)
		}
	}

	return parts
}

// PartNumberSum sums the values of all part numbers.
func PartNumberSum(r *Resolver) (int64, error) {
	var sum int64

	for _, n := range PartNumbers(r) {
		if sum > math.MaxInt64-n.Value {
			return 0, fmt.Errorf("part number sum: %w", ErrNumberOverflow)
		}

		sum += n.Value
	}

	return sum, nil
}

// Gears returns every gear symbol with its adjacent Numbers, valid or not.
func Gears(r *Resolver) []GearRatio {
	var gears []GearRatio

	for _, s := range r.entities.Symbols {
		if !s.IsGear() {
			continue
		}

		gears = append(gears, GearRatio{Gear: s, Numbers: r.NumbersAround(s)})
	}

	return gears
}

// GearRatioSum sums the ratios of gears touching exactly two Numbers.
func GearRatioSum(r *Resolver) (int64, error) {
	var sum int64

	for _, g := range Gears(r) {
		ratio, err := g.Ratio()
		if err != nil {
			return 0, err
		}

		if sum > math.MaxInt64-ratio {
			return 0, fmt.Errorf("gear ratio sum: %w", ErrNumberOverflow)
		}

		sum += ratio
	}

	return sum, nil
}
