package cache

import (
	"context"
	"time"
)

// nullCache backs --no-cache and [cache] disabled = true: every request
// decodes and renders its chart from scratch.
type nullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return nullCache{} }

// Disabled reports whether c is the null cache. The runner uses it to keep
// cache-miss metrics quiet when no cache was configured.
func Disabled(c Cache) bool {
	_, ok := c.(nullCache)
	return ok
}

func (nullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error                     { return nil }
func (nullCache) Close() error                                             { return nil }

