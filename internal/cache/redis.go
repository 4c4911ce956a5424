package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "modsync:cache:"

type redisEnvelope struct {
	Payload  json.RawMessage `json:"payload"`
	StoredAt time.Time       `json:"stored_at"`
}

// Redis keeps entries as envelopes under a key prefix. The key expiry is set
// to the TTL; reads still check stored_at.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (r *Redis) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	var env redisEnvelope
	if err := json.Unmarshal(b, &env); err != nil || expired(env.StoredAt, r.now(), r.ttl) {
		if delErr := r.client.Del(ctx, r.prefix+key).Err(); delErr != nil {
			return nil, false, fmt.Errorf("evict %s: %w", key, delErr)
		}
		return nil, false, nil
	}

	return env.Payload, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value json.RawMessage) error {
	b, err := json.Marshal(redisEnvelope{Payload: value, StoredAt: r.now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+key, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	keys, err := r.keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}

func (r *Redis) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	now := r.now()

	err := r.each(ctx, func(_ string, env redisEnvelope) {
		if expired(env.StoredAt, now, r.ttl) {
			return
		}
		stats.TotalEntries++
		if age := now.Sub(env.StoredAt); age > stats.OldestEntryAge {
			stats.OldestEntryAge = age
		}
	})
	return stats, err
}

func (r *Redis) Sweep(ctx context.Context) (int, error) {
	now := r.now()
	var stale []string

	err := r.each(ctx, func(key string, env redisEnvelope) {
		if expired(env.StoredAt, now, r.ttl) {
			stale = append(stale, key)
		}
	})
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	n, err := r.client.Del(ctx, stale...).Result()
	if err != nil {
		return 0, fmt.Errorf("delete expired: %w", err)
	}
	return int(n), nil
}

func (r *Redis) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan keys: %w", err)
	}
	return keys, nil
}

// each visits every envelope under the prefix. Keys that vanish or fail to
// decode between SCAN and MGET are skipped.
func (r *Redis) each(ctx context.Context, fn func(key string, env redisEnvelope)) error {
	keys, err := r.keys(ctx)
	if err != nil || len(keys) == 0 {
		return err
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return fmt.Errorf("mget: %w", err)
	}

	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var env redisEnvelope
		if err := json.Unmarshal([]byte(s), &env); err != nil {
			continue
		}
		fn(keys[i], env)
	}
	return nil
}
