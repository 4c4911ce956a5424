package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"modsync/internal/cache"
)

// ResponseCache is the cached_responses backed response cache.
type ResponseCache struct {
	db  *sqlx.DB
	ttl time.Duration
	now func() time.Time
}

func NewResponseCache(db *sqlx.DB, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &ResponseCache{db: db, ttl: ttl, now: time.Now}
}

func (c *ResponseCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var row struct {
		Payload  json.RawMessage `db:"payload"`
		StoredAt time.Time       `db:"stored_at"`
	}

	exec := GetExecutor(ctx, c.db)
	err := sqlx.GetContext(ctx, exec, &row, "SELECT payload, stored_at FROM cached_responses WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if c.now().Sub(row.StoredAt) > c.ttl {
		if _, err := exec.ExecContext(ctx, "DELETE FROM cached_responses WHERE key = $1 AND stored_at = $2", key, row.StoredAt); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	return row.Payload, true, nil
}

func (c *ResponseCache) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO cached_responses (key, payload, stored_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			stored_at = EXCLUDED.stored_at`

	_, err := GetExecutor(ctx, c.db).ExecContext(ctx, query, key, []byte(value), c.now())
	return err
}

func (c *ResponseCache) Clear(ctx context.Context) error {
	_, err := GetExecutor(ctx, c.db).ExecContext(ctx, "DELETE FROM cached_responses")
	return err
}

func (c *ResponseCache) Stats(ctx context.Context) (cache.Stats, error) {
	var row struct {
		Count  int          `db:"count"`
		Oldest sql.NullTime `db:"oldest"`
	}

	query := `SELECT COUNT(*) AS count, MIN(stored_at) AS oldest FROM cached_responses WHERE stored_at >= $1`
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, c.db), &row, query, c.cutoff()); err != nil {
		return cache.Stats{}, err
	}

	stats := cache.Stats{TotalEntries: row.Count}
	if row.Oldest.Valid {
		stats.OldestEntryAge = c.now().Sub(row.Oldest.Time)
	}
	return stats, nil
}

func (c *ResponseCache) Sweep(ctx context.Context) (int, error) {
	res, err := GetExecutor(ctx, c.db).ExecContext(ctx, "DELETE FROM cached_responses WHERE stored_at < $1", c.cutoff())
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (c *ResponseCache) cutoff() time.Time {
	return c.now().Add(-c.ttl)
}
