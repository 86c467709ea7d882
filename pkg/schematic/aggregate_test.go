package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantParts int64
		wantGears int64
	}{
		{"example", exampleSchematic, 4361, 467835},
		{"no symbols", "467..114..\n..35..633.\n..........", 0, 0},
		{"gear with one number", ".....\n.12*.\n.....", 12, 0},
		{"gear with three numbers", "1.2\n.*.\n3..", 6, 0},
		{"gear with exactly two numbers", "1.2\n.*.\n...", 3, 2},
		{"gear with no numbers", "...\n.*.\n...", 0, 0},
		{"numbers share a gear pair", "2*3*4", 9, 18},
		{"number touching two symbols counted once", "#5#", 5, 0},
		{"non-gear symbol with two numbers", "10#20", 30, 0},
		{"edges of the grid", "*9\n9*", 18, 162},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantParts, got.PartNumberSum, "part number sum")
			assert.Equal(t, tt.wantGears, got.GearRatioSum, "gear ratio sum")
		})
	}
}

func TestSolve_PropagatesGridErrors(t *testing.T) {
	_, err := Solve("")
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Solve("12\n1")
	require.ErrorIs(t, err, ErrMalformedGrid)

	_, err = Solve("*99999999999999999999")
	require.ErrorIs(t, err, ErrNumberOverflow)
}

func TestSolve_SumsAndProductsOverflow(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"gear product", "9999999999*9999999999"},
		{"part number sum", "9223372036854775807*1"},
		{"gear ratio sum", "3074457345618258603*2\n.....................\n3074457345618258603*2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.raw)
			require.ErrorIs(t, err, ErrNumberOverflow)
		})
	}
}

func TestSolve_LargestSumsStillFit(t *testing.T) {
	got, err := Solve("9223372036854775806*1")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), got.PartNumberSum)
	assert.Equal(t, int64(9223372036854775806), got.GearRatioSum)
}

func TestGearRatio_ThirdNumberFlipsInclusion(t *testing.T) {
	with, err := Solve("1.2\n.*.\n...")
	require.NoError(t, err)
	assert.Equal(t, int64(2), with.GearRatioSum)

	without, err := Solve("1.2\n.*.\n..3")
	require.NoError(t, err)
	assert.Equal(t, int64(0), without.GearRatioSum)
	assert.Equal(t, int64(6), without.PartNumberSum)
}

func TestPartNumbers_ExampleExcludesLooseNumbers(t *testing.T) {
	r := mustResolver(t, exampleSchematic)

	values := make([]int64, 0)
	for _, n := range PartNumbers(r) {
		values = append(values, n.Value)
	}

	assert.Equal(t, []int64{467, 35, 633, 617, 592, 755, 664, 598}, values)
	assert.NotContains(t, values, int64(114))
	assert.NotContains(t, values, int64(58))
}

func TestGears_Example(t *testing.T) {
	r := mustResolver(t, exampleSchematic)

	gears := Gears(r)
	require.Len(t, gears, 3)

	ratio := func(g GearRatio) int64 {
		v, err := g.Ratio()
		require.NoError(t, err)

		return v
	}

	assert.True(t, gears[0].Valid())
	assert.Equal(t, int64(467*35), ratio(gears[0]))

	assert.False(t, gears[1].Valid())
	assert.Len(t, gears[1].Numbers, 1)
	assert.Equal(t, int64(0), ratio(gears[1]))

	assert.True(t, gears[2].Valid())
	assert.Equal(t, int64(755*598), ratio(gears[2]))
}

func TestScan_ExposesGrid(t *testing.T) {
	s, err := Scan(exampleSchematic)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Grid().Height())
	assert.Equal(t, 10, s.Grid().Width())
	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, Result{PartNumberSum: 4361, GearRatioSum: 467835}, result)
}
