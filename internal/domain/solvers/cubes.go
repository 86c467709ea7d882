package solvers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "gondola.dev/pkg/gondola/internal/model"
)

// ErrMalformedGame is returned for a line that is not "Game N: draws".
var ErrMalformedGame = errors.New("malformed game")

// Bag limits for part 1.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

type draw struct {
	red, green, blue int64
}

func (d draw) possible() bool {
	return d.red <= maxRed && d.green <= maxGreen && d.blue <= maxBlue
}

type game struct {
	id    int64
	draws []draw
}

// Cubes solves day 2: part 1 sums the ids of games possible with the bag
// limits, part 2 sums the power of the smallest bag each game needs.
func Cubes(input string) (m.Answer, error) {
	var answer m.Answer

	for i, line := range lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return m.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		possible := true
		least := draw{}

		for _, d := range g.draws {
			possible = possible && d.possible()
			least.red = max(least.red, d.red)
			least.green = max(least.green, d.green)
			least.blue = max(least.blue, d.blue)
		}

		if possible {
			answer.Part1 += g.id
		}

		answer.Part2 += least.red * least.green * least.blue
	}

	return answer, nil
}

func parseGame(line string) (game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return game{}, fmt.Errorf("%w: missing ':'", ErrMalformedGame)
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Game" {
		return game{}, fmt.Errorf("%w: bad header %q", ErrMalformedGame, header)
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return game{}, fmt.Errorf("%w: bad id %q", ErrMalformedGame, fields[1])
	}

	g := game{id: id}

	for _, part := range strings.Split(body, ";") {
		d, err := parseDraw(part)
		if err != nil {
			return game{}, err
		}

		g.draws = append(g.draws, d)
	}

	return g, nil
}

func parseDraw(part string) (draw, error) {
	var d draw

	for _, cubes := range strings.Split(part, ",") {
		fields := strings.Fields(cubes)
		if len(fields) == 0 {
			continue
		}

		if len(fields) != 2 {
			return draw{}, fmt.Errorf("%w: bad cubes %q", ErrMalformedGame, strings.TrimSpace(cubes))
		}

		count, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || count < 0 {
			return draw{}, fmt.Errorf("%w: bad count %q", ErrMalformedGame, fields[0])
		}

		// same colour twice in one draw adds up; unknown colours are ignored
		switch fields[1] {
		case "red":
			d.red += count
		case "green":
			d.green += count
		case "blue":
			d.blue += count
		}
	}

	return d, nil
}
