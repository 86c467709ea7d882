package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	// pure Go driver, registers "sqlite"
	_ "modernc.org/sqlite"

	m "gondola.dev/pkg/gondola/internal/model"
)

// DefaultCachePath is where answers are remembered between runs.
const DefaultCachePath = ".gondola-cache.db"

// AnswerCache remembers answers keyed by day and input fingerprint.
type AnswerCache interface {
	Lookup(ctx context.Context, day m.Day, inputHash string) (m.Answer, bool, error)
	Store(ctx context.Context, entry m.CacheEntry) error
	History(ctx context.Context, day m.Day, limit int) ([]m.CacheEntry, error)
	Close() error
}

// SQLiteAnswerCache stores answers in a SQLite database. The database is
// opened on first use so commands that never touch the cache do not create it.
type SQLiteAnswerCache struct {
	path string

	mu  sync.Mutex
	db  *sql.DB
	err error
}

// NewSQLiteAnswerCache creates a cache backed by the database at path.
// Use ":memory:" for a throwaway cache.
func NewSQLiteAnswerCache(path string) *SQLiteAnswerCache {
	if path == "" {
		path = DefaultCachePath
	}

	return &SQLiteAnswerCache{path: path}
}

func (c *SQLiteAnswerCache) open(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil || c.err != nil {
		return c.db, c.err
	}

	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		c.err = fmt.Errorf("open answer cache: %w", err)
		return nil, c.err
	}

	// a single connection keeps ":memory:" databases alive and serialises writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyCacheMigrations(ctx, db); err != nil {
		_ = db.Close()
		c.err = fmt.Errorf("migrate answer cache: %w", err)

		return nil, c.err
	}

	slog.Debug("opened answer cache", "path", c.path)

	c.db = db

	return db, nil
}

// Lookup returns the remembered answer for day and inputHash.
func (c *SQLiteAnswerCache) Lookup(ctx context.Context, day m.Day, inputHash string) (m.Answer, bool, error) {
	db, err := c.open(ctx)
	if err != nil {
		return m.Answer{}, false, err
	}

	var answer m.Answer

	err = db.QueryRowContext(ctx,
		"SELECT part1, part2 FROM answers WHERE day = ? AND input_hash = ?",
		int(day), inputHash,
	).Scan(&answer.Part1, &answer.Part2)
	if errors.Is(err, sql.ErrNoRows) {
		return m.Answer{}, false, nil
	}

	if err != nil {
		return m.Answer{}, false, fmt.Errorf("lookup %s: %w", day, err)
	}

	return answer, true, nil
}

// Store remembers entry, replacing any answer for the same input.
func (c *SQLiteAnswerCache) Store(ctx context.Context, entry m.CacheEntry) error {
	db, err := c.open(ctx)
	if err != nil {
		return err
	}

	solvedAt := entry.SolvedAt
	if solvedAt.IsZero() {
		solvedAt = time.Now()
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO answers (day, input_hash, part1, part2, solved_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(day, input_hash) DO UPDATE SET
    part1 = excluded.part1,
    part2 = excluded.part2,
    solved_at = excluded.solved_at`,
		int(entry.Day), entry.InputHash, entry.Answer.Part1, entry.Answer.Part2, solvedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", entry.Day, err)
	}

	return nil
}

// History lists remembered answers, newest first. A zero day lists every day;
// a non-positive limit lists everything.
func (c *SQLiteAnswerCache) History(ctx context.Context, day m.Day, limit int) ([]m.CacheEntry, error) {
	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = -1
	}

	rows, err := db.QueryContext(ctx, `
SELECT day, input_hash, part1, part2, solved_at FROM answers
WHERE ? = 0 OR day = ?
ORDER BY solved_at DESC, day ASC
LIMIT ?`,
		int(day), int(day), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var entries []m.CacheEntry

	for rows.Next() {
		var (
			entry  m.CacheEntry
			dayNum int
		)

		if err := rows.Scan(&dayNum, &entry.InputHash, &entry.Answer.Part1, &entry.Answer.Part2, &entry.SolvedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}

		entry.Day = m.Day(dayNum)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close releases the database if it was opened.
func (c *SQLiteAnswerCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil

	return err
}
