// Package cache stores rendered chart artifacts.
//
// Rendering a large venue is cheap compared to a round trip, but the HTTP
// API and the CLI both re-render the same charts repeatedly. The [Cache]
// interface hides where artifacts live:
//
//   - [NewNullCache]: caching disabled
//   - [FileCache]: one file per entry under a local directory (CLI)
//   - [RedisCache]: shared cache for API servers
//
// Keys are produced by a [Keyer] so every host derives the same key for the
// same chart and render options.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the value for key. The second result is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Default TTLs for cached entries.
const (
	// TTLChart is how long a decoded chart file is kept, keyed by content hash.
	TTLChart = 24 * time.Hour

	// TTLArtifact is how long a rendered artifact is kept.
	TTLArtifact = 7 * 24 * time.Hour
)
