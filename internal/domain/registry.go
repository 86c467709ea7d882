package domain

import (
	"errors"
	"fmt"
	"sort"

	"gondola.dev/pkg/gondola/internal/domain/solvers"
	m "gondola.dev/pkg/gondola/internal/model"
)

// ErrUnknownDay is returned for a day without a registered puzzle.
var ErrUnknownDay = errors.New("unknown day")

// SolveFunc computes both answers from raw puzzle input.
type SolveFunc func(input string) (m.Answer, error)

// Puzzle binds a day to its solver.
type Puzzle struct {
	Day   m.Day
	Title string
	Solve SolveFunc
}

// Registry looks up puzzles by day.
type Registry interface {
	Get(day m.Day) (Puzzle, error)
	List() []Puzzle
}

type registry struct {
	puzzles map[m.Day]Puzzle
}

// NewRegistry creates a Registry holding puzzles. A later puzzle for the same
// day replaces an earlier one.
func NewRegistry(puzzles ...Puzzle) Registry {
	r := &registry{puzzles: make(map[m.Day]Puzzle, len(puzzles))}
	for _, p := range puzzles {
		r.puzzles[p.Day] = p
	}

	return r
}

// DefaultRegistry registers every implemented day.
func DefaultRegistry() Registry {
	return NewRegistry(
		Puzzle{Day: 1, Title: "Trebuchet?!", Solve: solvers.Trebuchet},
		Puzzle{Day: 2, Title: "Cube Conundrum", Solve: solvers.Cubes},
		Puzzle{Day: 3, Title: "Gear Ratios", Solve: solvers.GearRatios},
		Puzzle{Day: 4, Title: "Scratchcards", Solve: solvers.Scratchcards},
	)
}

func (r *registry) Get(day m.Day) (Puzzle, error) {
	p, ok := r.puzzles[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrUnknownDay, day)
	}

	return p, nil
}

// List returns the puzzles ordered by day.
func (r *registry) List() []Puzzle {
	puzzles := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		puzzles = append(puzzles, p)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].Day < puzzles[j].Day
	})

	return puzzles
}
