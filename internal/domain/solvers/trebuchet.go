// Package solvers holds one solver per puzzle day. Every solver takes the raw
// puzzle input and returns the answers to both parts.
package solvers

import (
	"errors"
	"fmt"
	"strings"

	m "gondola.dev/pkg/gondola/internal/model"
)

// ErrNoDigits is returned when a calibration line has no digit to read.
var ErrNoDigits = errors.New("no digits in calibration line")

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Trebuchet solves day 1: calibration values are formed from the first and
// last digit of every line. Part 2 also reads digits spelled out in letters,
// which may overlap ("eightwo" reads 8 then 2).
func Trebuchet(input string) (m.Answer, error) {
	part1, err := calibrationSum(input, false)
	if err != nil {
		return m.Answer{}, fmt.Errorf("part 1: %w", err)
	}

	part2, err := calibrationSum(input, true)
	if err != nil {
		return m.Answer{}, fmt.Errorf("part 2: %w", err)
	}

	return m.Answer{Part1: part1, Part2: part2}, nil
}

func calibrationSum(input string, withWords bool) (int64, error) {
	var sum int64

	for i, line := range lines(input) {
		value, err := calibrationValue(line, withWords)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		sum += value
	}

	return sum, nil
}

func calibrationValue(line string, withWords bool) (int64, error) {
	first, last := -1, -1

	for i := range line {
		d, ok := digitAt(line, i, withWords)
		if !ok {
			continue
		}

		if first < 0 {
			first = d
		}

		last = d
	}

	if first < 0 {
		return 0, ErrNoDigits
	}

	return int64(first*10 + last), nil
}

func digitAt(line string, i int, withWords bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}

	if !withWords {
		return 0, false
	}

	for n, word := range spelledDigits {
		if strings.HasPrefix(line[i:], word) {
			return n + 1, true
		}
	}

	return 0, false
}

// lines splits input into non-empty lines, dropping carriage returns.
func lines(input string) []string {
	var out []string

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		out = append(out, line)
	}

	return out
}
