package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentCacheSchemaVersion tracks the answer cache schema version.
const CurrentCacheSchemaVersion = "1.1.0"

type cacheMigration struct {
	Version string
	Up      string
}

var cacheMigrations = []cacheMigration{
	{
		Version: "1.0.0",
		Up: `
CREATE TABLE IF NOT EXISTS schema_version (
    version TEXT PRIMARY KEY,
    applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS answers (
    day INTEGER NOT NULL,
    input_hash TEXT NOT NULL,
    part1 INTEGER NOT NULL,
    part2 INTEGER NOT NULL,
    solved_at TIMESTAMP NOT NULL,
    PRIMARY KEY (day, input_hash)
);
`,
	},
	{
		Version: "1.1.0",
		Up: `
CREATE INDEX IF NOT EXISTS idx_answers_solved_at ON answers(solved_at);
`,
	},
}

func currentCacheVersion(ctx context.Context, db *sql.DB) (*semver.Version, error) {
	var tableName string

	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableName)
	if errors.Is(err, sql.ErrNoRows) {
		return semver.MustParse("0.0.0"), nil
	}

	if err != nil {
		return nil, fmt.Errorf("check schema_version table: %w", err)
	}

	var versions []*semver.Version

	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_version")
	if err != nil {
		return nil, fmt.Errorf("read schema_version: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan schema_version: %w", err)
		}

		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid schema version %s: %w", raw, err)
		}

		versions = append(versions, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	current := semver.MustParse("0.0.0")
	for _, v := range versions {
		if v.GreaterThan(current) {
			current = v
		}
	}

	return current, nil
}

// applyCacheMigrations runs every migration newer than the stored version.
func applyCacheMigrations(ctx context.Context, db *sql.DB) error {
	current, err := currentCacheVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, migration := range cacheMigrations {
		version, err := semver.NewVersion(migration.Version)
		if err != nil {
			return fmt.Errorf("invalid migration version %s: %w", migration.Version, err)
		}

		if !current.LessThan(version) {
			continue
		}

		if _, err := db.ExecContext(ctx, migration.Up); err != nil {
			return fmt.Errorf("apply migration %s: %w", migration.Version, err)
		}

		if _, err := db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Version, err)
		}

		current = version
	}

	return nil
}
