package cache

import (
	"context"
	"encoding/json"
	"time"
)

const DefaultTTL = 5 * time.Minute

// Stats describes the live content of a response cache.
type Stats struct {
	TotalEntries   int           `json:"totalEntries"`
	OldestEntryAge time.Duration `json:"oldestEntryAge"`
}

// Cache stores upstream JSON responses for a short TTL. Expired entries are
// never returned.
type Cache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	Sweep(ctx context.Context) (int, error)
}

func expired(storedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(storedAt) > ttl
}

func clone(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
