package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memItem struct {
	value    json.RawMessage
	storedAt time.Time
}

type Memory struct {
	mu    sync.Mutex
	items map[string]memItem
	ttl   time.Duration
	now   func() time.Time
}

func NewMemory(ttl time.Duration, now func() time.Time) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Memory{
		items: make(map[string]memItem),
		ttl:   ttl,
		now:   now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	if expired(it.storedAt, m.now(), m.ttl) {
		delete(m.items, key)
		return nil, false, nil
	}
	return clone(it.value), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	m.items[key] = memItem{value: clone(value), storedAt: m.now()}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.items = make(map[string]memItem)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Stats(_ context.Context) (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var stats Stats
	for _, it := range m.items {
		if expired(it.storedAt, now, m.ttl) {
			continue
		}
		stats.TotalEntries++
		if age := now.Sub(it.storedAt); age > stats.OldestEntryAge {
			stats.OldestEntryAge = age
		}
	}
	return stats, nil
}

func (m *Memory) Sweep(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, it := range m.items {
		if expired(it.storedAt, now, m.ttl) {
			delete(m.items, key)
			removed++
		}
	}
	return removed, nil
}
