// Package cache provides byte caches for encoded QR renders.
//
// Rendering and encoding the same request twice always produces the same
// bytes, so the HTTP server caches finished encodings keyed by a hash of
// the render request. Three backends are provided:
//   - FileCache: directory-backed, for single-host deployments and the CLI
//   - RedisCache: for multi-instance deployments
//   - NullCache: disables caching
//
// Keys are built with [RenderKey] so every parameter that affects the
// output participates in the hash.
package cache

import (
	"context"
	"time"
)

// Cache stores encoded render output.
// Get reports a miss with hit=false and a nil error; errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Namespaced wraps a Cache so every key is prefixed, keeping different
// consumers of one backend from colliding.
func Namespaced(inner Cache, prefix string) Cache {
	return &namespaced{inner: inner, prefix: prefix}
}

type namespaced struct {
	inner  Cache
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, data, ttl)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Close() error {
	return n.inner.Close()
}
