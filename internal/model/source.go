// Package model defines the data structures shared by the puzzle runner.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path represents a file system path.
type Path string

// ErrInvalidDay is returned when a day argument cannot be parsed.
var ErrInvalidDay = errors.New("invalid day")

// Day is a puzzle day, 1 through 25.
type Day int

// MaxDay is the last day of the calendar.
const MaxDay Day = 25

func (d Day) String() string {
	return fmt.Sprintf("day%02d", int(d))
}

// ParseDay accepts "3", "03", "day3" and "day03".
func ParseDay(value string) (Day, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), "day")

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, value)
	}

	if n < 1 || Day(n) > MaxDay {
		return 0, fmt.Errorf("%w: %q out of range 1-%d", ErrInvalidDay, value, MaxDay)
	}

	return Day(n), nil
}

// Input is the raw puzzle text for one day.
type Input struct {
	Day     Day
	Path    Path
	Content string
	Hash    string
}
