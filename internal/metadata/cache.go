// Package metadata provides caching and orchestration for external metadata APIs.
package metadata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/wdtvmd/internal/migrations"
)

// Cache provides SQLite-backed caching for metadata API responses.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewCache wraps an open database that already has the cache schema.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db}
}

// Open opens (creating if needed) the cache file at path and applies the schema.
func Open(ctx context.Context, path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// Serialize access; concurrent walkers share one handle.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, migrations.MetadataCacheSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return NewCache(db), nil
}

// SetTTL makes every entry expire after d, overriding the per-kind TTLs.
// Zero restores them.
func (c *Cache) SetTTL(d time.Duration) {
	if c != nil {
		c.ttl = d
	}
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Get retrieves a cached value by key.
// Returns nil, false if not found or expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	var value []byte
	var expiresAt time.Time
	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM metadata_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)

	if err != nil || time.Now().After(expiresAt) {
		return nil, false
	}
	if value == nil {
		value = []byte{}
	}
	return value, true
}

// Set stores a value with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	if c.ttl > 0 {
		ttl = c.ttl
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO metadata_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, time.Now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	if _, err := c.db.ExecContext(ctx, "DELETE FROM metadata_cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Prune removes all expired entries.
// Returns the number of entries removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	if c == nil {
		return 0, nil
	}
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM metadata_cache WHERE expires_at < ?", time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}

// cached returns the value stored under key, or calls fetch and stores its
// result for ttl. Cache failures are logged and never fail the lookup.
func cached[T any](ctx context.Context, c *Cache, log *slog.Logger, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if data, ok := c.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			log.Debug("cache hit", "key", key)
			return v, nil
		}
		log.Warn("failed to unmarshal cached value", "key", key)
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("failed to marshal value for cache", "key", key, "error", err)
		return v, nil
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		log.Warn("failed to cache value", "key", key, "error", err)
	}
	return v, nil
}
