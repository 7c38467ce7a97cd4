package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"solar-profit/internal/model"
)

// Entry is one cached value with its expiry.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// TTLCache is an in-memory map with per-entry expiry.
// A nil *TTLCache is valid and caches nothing.
type TTLCache[V any] struct {
	mu    sync.RWMutex
	store map[string]Entry[V]
	ttl   time.Duration
	now   func() time.Time
}

func New[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		store: make(map[string]Entry[V]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.ExpiresAt) {
		return zero, false
	}
	return entry.Value, true
}

func (c *TTLCache[V]) Set(key string, v V) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = Entry[V]{Value: v, ExpiresAt: c.now().Add(c.ttl)}
}

func (c *TTLCache[V]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *TTLCache[V]) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]Entry[V])
}

// Sweep removes entries expired at now and returns how many were dropped.
func (c *TTLCache[V]) Sweep(now time.Time) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			n++
		}
	}
	return n
}

// Run sweeps expired entries every interval until ctx is done.
func (c *TTLCache[V]) Run(ctx context.Context, every time.Duration) {
	if c == nil {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			c.Sweep(t)
		}
	}
}

// InputsKey is a deterministic digest of in, used to reuse ids for repeated inputs.
func InputsKey(in model.Inputs) string {
	keyStr := fmt.Sprintf("%v:%v:%v:%v", in.Power, in.InitialDeviation, in.ImprovedDeviation, in.RatePerKWh)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
