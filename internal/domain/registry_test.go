package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "gondola.dev/pkg/gondola/internal/domain"
	m "gondola.dev/pkg/gondola/internal/model"
)

func TestDefaultRegistry_List(t *testing.T) {
	puzzles := domain.DefaultRegistry().List()

	days := make([]m.Day, 0, len(puzzles))
	for _, p := range puzzles {
		days = append(days, p.Day)
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.Solve)
	}

	assert.Equal(t, []m.Day{1, 2, 3, 4}, days)
}

func TestDefaultRegistry_GearRatios(t *testing.T) {
	p, err := domain.DefaultRegistry().Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Gear Ratios", p.Title)

	answer, err := p.Solve(gearExample)
	require.NoError(t, err)
	assert.Equal(t, m.Answer{Part1: 4361, Part2: 467835}, answer)
}

func TestRegistry_Get(t *testing.T) {
	noop := func(string) (m.Answer, error) { return m.Answer{}, nil }

	r := domain.NewRegistry(
		domain.Puzzle{Day: 5, Title: "first", Solve: noop},
		domain.Puzzle{Day: 5, Title: "second", Solve: noop},
	)

	p, err := r.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "second", p.Title)
	assert.Len(t, r.List(), 1)

	_, err = r.Get(6)
	require.ErrorIs(t, err, domain.ErrUnknownDay)
	assert.Contains(t, err.Error(), "day06")
}
