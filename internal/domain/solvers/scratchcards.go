package solvers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	m "gondola.dev/pkg/gondola/internal/model"
)

// ErrMalformedCard is returned for a line that is not "Card N: winners | numbers".
var ErrMalformedCard = errors.New("malformed card")

// ErrScoreOverflow is returned when a score or card count does not fit in int64.
var ErrScoreOverflow = errors.New("scratchcard total overflows int64")

// maxScoredMatches is the largest match count whose score 2^(n-1) fits in int64.
const maxScoredMatches = 63

// Scratchcards solves day 4. Part 1 scores each card 2^(matches-1). In part 2
// a card with k matches wins one copy of each of the next k cards; the answer
// is the number of cards held at the end.
func Scratchcards(input string) (m.Answer, error) {
	cards := lines(input)
	matches := make([]int, len(cards))

	for i, line := range cards {
		n, err := countMatches(line)
		if err != nil {
			return m.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		matches[i] = n
	}

	var answer m.Answer

	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, n := range matches {
		if n > 0 {
			if n > maxScoredMatches {
				return m.Answer{}, fmt.Errorf("card %d: %d matches: %w", i+1, n, ErrScoreOverflow)
			}

			score := int64(1) << (n - 1)
			if answer.Part1 > math.MaxInt64-score {
				return m.Answer{}, fmt.Errorf("card %d: %w", i+1, ErrScoreOverflow)
			}

			answer.Part1 += score
		}

		// copies past the last card are dropped
		for j := i + 1; j <= i+n && j < len(copies); j++ {
			if copies[j] > math.MaxInt64-copies[i] {
				return m.Answer{}, fmt.Errorf("card %d: %w", j+1, ErrScoreOverflow)
			}

			copies[j] += copies[i]
		}

		if answer.Part2 > math.MaxInt64-copies[i] {
			return m.Answer{}, fmt.Errorf("card %d: %w", i+1, ErrScoreOverflow)
		}

		answer.Part2 += copies[i]
	}

	return answer, nil
}

func countMatches(line string) (int, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(strings.TrimSpace(header), "Card") {
		return 0, fmt.Errorf("%w: missing card header", ErrMalformedCard)
	}

	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return 0, fmt.Errorf("%w: missing '|'", ErrMalformedCard)
	}

	winning := make(map[int]bool)

	for _, field := range strings.Fields(left) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("%w: bad number %q", ErrMalformedCard, field)
		}

		winning[n] = true
	}

	count := 0

	for _, field := range strings.Fields(right) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("%w: bad number %q", ErrMalformedCard, field)
		}

		if winning[n] {
			count++
		}
	}

	return count, nil
}
