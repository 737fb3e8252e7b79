// Package cache provides the bounded response caches of the chatbot.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidCapacity is returned for a non-positive cache capacity.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

// LRU is a fixed-size, concurrency-safe cache evicting the least recently
// used entry when full.
type LRU[V any] struct {
	entries *lru.Cache[string, V]
}

// NewLRU creates an LRU holding at most capacity entries.
func NewLRU[V any](capacity int) (*LRU[V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	entries, err := lru.New[string, V](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru: %w", err)
	}
	return &LRU[V]{entries: entries}, nil
}

// Get returns the value for key and marks it recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	return c.entries.Get(key)
}

// Add stores value under key, evicting the oldest entry if needed.
func (c *LRU[V]) Add(key string, value V) {
	c.entries.Add(key, value)
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	return c.entries.Len()
}

// RemoteStore is a shared byte store such as fiber's redis storage.
type RemoteStore interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Layered fronts a RemoteStore with a local LRU. Entries written by one
// replica become visible to the others through the remote store; a remote
// hit is copied into the local LRU. Remote failures are logged and treated
// as misses so the local cache keeps working on its own.
type Layered[V any] struct {
	local  *LRU[V]
	remote RemoteStore
	prefix string
	ttl    time.Duration
}

// NewLayered creates a Layered cache. Remote keys are prefix+key and expire
// after ttl (0 keeps them forever).
func NewLayered[V any](local *LRU[V], remote RemoteStore, prefix string, ttl time.Duration) *Layered[V] {
	return &Layered[V]{local: local, remote: remote, prefix: prefix, ttl: ttl}
}

// Get returns the value for key from the local LRU or the remote store.
func (c *Layered[V]) Get(key string) (V, bool) {
	if v, ok := c.local.Get(key); ok {
		return v, true
	}

	var zero V
	data, err := c.remote.Get(c.prefix + key)
	if err != nil {
		slog.Error("remote cache get failed", "key", key, "error", err)
		return zero, false
	}
	if data == nil {
		return zero, false
	}

	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Error("remote cache entry is corrupt", "key", key, "error", err)
		return zero, false
	}
	c.local.Add(key, v)
	return v, true
}

// Add stores value locally and in the remote store.
func (c *Layered[V]) Add(key string, value V) {
	c.local.Add(key, value)

	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := c.remote.Set(c.prefix+key, data, c.ttl); err != nil {
		slog.Error("remote cache set failed", "key", key, "error", err)
	}
}

// Len returns the number of locally cached entries.
func (c *Layered[V]) Len() int {
	return c.local.Len()
}
