// Package storage persists fetched source text in a local SQLite file so
// repeated corpus builds skip the network.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver
)

const cacheFileName = "prose-cache.db"

const createCacheTable = `
CREATE TABLE IF NOT EXISTS fetched_texts (
    source_key TEXT PRIMARY KEY,
    body       TEXT NOT NULL,
    fetched_at TIMESTAMP NOT NULL
)`

// SQLiteCache is a single-file text cache keyed by source key
// ("gutenberg-<id>", "url-<hash>").
type SQLiteCache struct {
	db   *sql.DB
	path string
}

// NewSQLiteCache opens (creating if needed) the cache database under dir.
func NewSQLiteCache(dir string) (*SQLiteCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	path := filepath.Join(dir, cacheFileName)
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if _, err := db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &SQLiteCache{db: db, path: path}, nil
}

// Path returns the database file location.
func (c *SQLiteCache) Path() string {
	return c.path
}

// Get looks a body up by source key.
func (c *SQLiteCache) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sq.Select("body").
		From("fetched_texts").
		Where(sq.Eq{"source_key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build cache query: %w", err)
	}

	var body string
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read cache entry: %w", err)
	}
	return body, true, nil
}

// Put stores or refreshes a body under its source key.
func (c *SQLiteCache) Put(ctx context.Context, key, body string) error {
	query, args, err := sq.Insert("fetched_texts").
		Columns("source_key", "body", "fetched_at").
		Values(key, body, time.Now().UTC()).
		Suffix("ON CONFLICT(source_key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build cache upsert: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
