package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gondola.dev/pkg/gondola/internal/model"
)

func setupTestCache(t *testing.T) *SQLiteAnswerCache {
	t.Helper()

	cache := NewSQLiteAnswerCache(":memory:")
	t.Cleanup(func() {
		_ = cache.Close()
	})

	return cache
}

func TestSQLiteAnswerCache_LookupMiss(t *testing.T) {
	cache := setupTestCache(t)

	_, ok, err := cache.Lookup(context.Background(), 3, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteAnswerCache_StoreAndLookup(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	entry := m.CacheEntry{Day: 3, InputHash: "h1", Answer: m.Answer{Part1: 4361, Part2: 467835}}
	require.NoError(t, cache.Store(ctx, entry))

	answer, ok, err := cache.Lookup(ctx, 3, "h1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry.Answer, answer)

	_, ok, err = cache.Lookup(ctx, 4, "h1")
	require.NoError(t, err)
	assert.False(t, ok, "hash is scoped to the day")
}

func TestSQLiteAnswerCache_StoreReplaces(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, m.CacheEntry{Day: 1, InputHash: "h", Answer: m.Answer{Part1: 1, Part2: 2}}))
	require.NoError(t, cache.Store(ctx, m.CacheEntry{Day: 1, InputHash: "h", Answer: m.Answer{Part1: 3, Part2: 4}}))

	answer, ok, err := cache.Lookup(ctx, 1, "h")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, m.Answer{Part1: 3, Part2: 4}, answer)

	history, err := cache.History(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSQLiteAnswerCache_History(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()
	base := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	for i, day := range []m.Day{1, 2, 3, 3} {
		require.NoError(t, cache.Store(ctx, m.CacheEntry{
			Day:       day,
			InputHash: string(rune('a' + i)),
			Answer:    m.Answer{Part1: int64(i), Part2: int64(i * 10)},
			SolvedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, err := cache.History(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "d", all[0].InputHash, "newest first")
	assert.True(t, all[0].SolvedAt.Equal(base.Add(3*time.Hour)))

	day3, err := cache.History(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, day3, 2)

	for _, entry := range day3 {
		assert.Equal(t, m.Day(3), entry.Day)
	}

	limited, err := cache.History(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteAnswerCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first := NewSQLiteAnswerCache(path)
	require.NoError(t, first.Store(ctx, m.CacheEntry{Day: 2, InputHash: "x", Answer: m.Answer{Part1: 8, Part2: 2286}}))
	require.NoError(t, first.Close())

	second := NewSQLiteAnswerCache(path)
	defer second.Close()

	answer, ok, err := second.Lookup(ctx, 2, "x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, m.Answer{Part1: 8, Part2: 2286}, answer)
}

func TestSQLiteAnswerCache_CloseUnopened(t *testing.T) {
	assert.NoError(t, NewSQLiteAnswerCache(":memory:").Close())
}

func TestApplyCacheMigrations_Idempotent(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	db, err := cache.open(ctx)
	require.NoError(t, err)

	require.NoError(t, applyCacheMigrations(ctx, db))

	version, err := currentCacheVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, CurrentCacheSchemaVersion, version.String())

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version").Scan(&count))
	assert.Equal(t, len(cacheMigrations), count)
}
