package solvers

import (
	m "gondola.dev/pkg/gondola/internal/model"
	"gondola.dev/pkg/gondola/pkg/schematic"
)

// GearRatios solves day 3: part 1 sums the part numbers of the engine
// schematic, part 2 sums its gear ratios.
func GearRatios(input string) (m.Answer, error) {
	result, err := schematic.Solve(input)
	if err != nil {
		return m.Answer{}, err
	}

	return m.Answer{Part1: result.PartNumberSum, Part2: result.GearRatioSum}, nil
}
