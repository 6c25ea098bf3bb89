// Package cache memoises computed layouts inside one process.
//
// The [Cache] interface stores opaque byte payloads under string keys with an
// optional time-to-live. Two implementations are provided:
//
//   - [MemoryCache]: a mutex-guarded map with lazy expiry
//   - [NullCache]: stores nothing, for callers that want every layout fresh
//
// Nothing is written to disk. Keys are built by a [Keyer] from a SHA-256 of
// the input blocks plus the options that influence the result, so a change to
// either produces a different key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// DefaultTTL is the lifetime used when callers do not pick one.
const DefaultTTL = 10 * time.Minute

// ErrCacheMiss is returned by GetJSON when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores byte payloads by key.
type Cache interface {
	// Get returns the payload for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// GetJSON decodes the payload stored under key into v.
// It returns ErrCacheMiss when nothing is stored.
func GetJSON(ctx context.Context, c Cache, key string, v any) error {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(data, v)
}

// SetJSON encodes v and stores it under key. It returns the payload size.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return len(data), c.Set(ctx, key, data, ttl)
}

// NullCache stores nothing. Every Get misses, so callers always compute a
// fresh layout.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return NullCache{} }

// Get always misses.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var (
	_ Cache = NullCache{}
	_ Cache = (*MemoryCache)(nil)
)
