package model

import "time"

// Answer holds the results of both puzzle parts.
type Answer struct {
	Part1 int64 `yaml:"part1"`
	Part2 int64 `yaml:"part2"`
}

// Status represents the outcome of solving a day.
type Status int

const (
	// Solved indicates the answer was computed in this run.
	Solved Status = iota
	// Cached indicates the answer was served from the answer cache.
	Cached
	// Failed indicates the input could not be loaded or solved.
	Failed
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Cached:
		return "cached"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solved":
		*s = Solved
	case "cached":
		*s = Cached
	default:
		*s = Failed
	}

	return nil
}

// Report is the result of solving a single day.
type Report struct {
	Day       Day           `yaml:"day"`
	Title     string        `yaml:"title"`
	Status    Status        `yaml:"status"`
	Answer    Answer        `yaml:"answer"`
	InputHash string        `yaml:"input_hash,omitempty"`
	Duration  time.Duration `yaml:"duration"`
	Error     string        `yaml:"error,omitempty"`
}

// Run groups the reports produced by one invocation.
type Run struct {
	ID        string    `yaml:"id"`
	StartedAt time.Time `yaml:"started_at"`
	Reports   []Report  `yaml:"reports"`
}

// CacheEntry is an answer remembered for a given input.
type CacheEntry struct {
	Day       Day
	InputHash string
	Answer    Answer
	SolvedAt  time.Time
}
