package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value store with per-entry TTL.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var group singleflight.Group

type loaded[V any] struct {
	val V
}

// GetOrSet returns the cached value for key, computing and storing it with fn
// on a miss. Concurrent misses for the same key in the same cache share one
// fn call. Errors from fn are returned and nothing is stored.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	res, err, _ := group.Do(fmt.Sprintf("%p/%s", c, key), func() (any, error) {
		// Another caller may have stored the value while we waited.
		if v, err := c.Get(ctx, key); err == nil {
			return loaded[V]{val: v}, nil
		}
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, val, ttl); err != nil {
			return nil, err
		}
		return loaded[V]{val: val}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(loaded[V]).val, nil
}
