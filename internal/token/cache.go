// Package token holds the bearer credential used for every upstream call.
package token

import (
	"sync"
	"time"
)

type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Cache is a single-slot token store. Racing writers are allowed; the last Set wins.
type Cache struct {
	mu    sync.RWMutex
	token *Token
	now   func() time.Time
}

func NewCache(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{now: now}
}

// Get returns the cached token while it has not expired.
func (c *Cache) Get() (Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil || !c.now().Before(c.token.ExpiresAt) {
		return Token{}, false
	}
	return *c.token, true
}

func (c *Cache) Set(value string, ttl time.Duration) Token {
	t := Token{Value: value, ExpiresAt: c.now().Add(ttl)}

	c.mu.Lock()
	c.token = &t
	c.mu.Unlock()

	return t
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}
