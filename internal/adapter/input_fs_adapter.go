// Package adapter contains filesystem and storage adapters for the gondola CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "gondola.dev/pkg/gondola/internal/model"
)

// DefaultInputPattern names input files after the day number.
const DefaultInputPattern = "day%d.txt"

// ErrInputNotFound is returned when a day has no input file.
var ErrInputNotFound = errors.New("input not found")

// InputFSAdapter hides filesystem access from the domain layer so the
// workflow can be tested without touching the disk.
type InputFSAdapter interface {
	// InputPath returns where the input for day is expected inside dir.
	InputPath(dir m.Path, day m.Day) m.Path

	// ReadInput loads and fingerprints the input for day.
	ReadInput(ctx context.Context, dir m.Path, day m.Day) (m.Input, error)

	// ReadFile loads an arbitrary file.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// Exists reports whether path names a regular file.
	Exists(ctx context.Context, path m.Path) (bool, error)
}

// LocalInputFSAdapter reads inputs from the local filesystem.
type LocalInputFSAdapter struct {
	pattern string
}

// NewLocalInputFSAdapter constructs an adapter resolving inputs with pattern,
// a fmt verb string receiving the day number.
func NewLocalInputFSAdapter(pattern string) *LocalInputFSAdapter {
	if pattern == "" {
		pattern = DefaultInputPattern
	}

	return &LocalInputFSAdapter{pattern: pattern}
}

// InputPath joins dir with the pattern expanded for day.
func (a *LocalInputFSAdapter) InputPath(dir m.Path, day m.Day) m.Path {
	return m.Path(filepath.Join(string(dir), fmt.Sprintf(a.pattern, int(day))))
}

// ReadInput loads the input for day and hashes its content.
func (a *LocalInputFSAdapter) ReadInput(ctx context.Context, dir m.Path, day m.Day) (m.Input, error) {
	path := a.InputPath(dir, day)

	content, err := a.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Input{}, fmt.Errorf("%w: %s (%s)", ErrInputNotFound, day, path)
		}

		return m.Input{}, err
	}

	slog.Debug("read input", "day", day, "path", path, "bytes", len(content))

	return m.Input{
		Day:     day,
		Path:    path,
		Content: string(content),
		Hash:    HashContent(content),
	}, nil
}

// ReadFile loads file contents from disk.
func (a *LocalInputFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// Exists reports whether path is an existing regular file.
func (a *LocalInputFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular(), nil
}

// HashContent returns the SHA-256 fingerprint of content.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}
