// Package cache provides the time-boxed response cache keyed by
// (content type, query). Two backends implement the same interface: an
// in-memory store and a Redis store.
package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how stale a cached remote result may get.
const DefaultTTL = 5 * time.Minute

// Cache is the response cache contract. Values are opaque serialized
// payloads; the resolver owns their encoding. A cache hit short-circuits the
// whole resolution pipeline, so backends must treat expired entries as
// misses, never as stale hits.
type Cache interface {
	// Get returns the cached payload for key. The second return is false
	// on a miss (absent or expired).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under key for the given TTL. A non-positive
	// ttl falls back to DefaultTTL. Entries are replaced whole, never
	// partially updated.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes every entry whose key starts with prefix and
	// returns the number removed. An empty prefix flushes everything.
	Invalidate(ctx context.Context, prefix string) (int, error)

	// Reset flushes the cache completely. Used for test isolation and by
	// full-flush change notifications.
	Reset(ctx context.Context) error
}
