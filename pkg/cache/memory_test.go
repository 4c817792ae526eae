package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/pkg/cache"
)

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
		v, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		_, err := c.Get(ctx, "nope")
		assert.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("expires", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string](cache.WithCleanupInterval(0))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)

		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, cache.ErrNotFound)
		assert.Zero(t, c.Len(), "expired entry is dropped on access")
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int](cache.WithDefaultTTL(time.Millisecond))
		defer c.Close()

		require.NoError(t, c.Set(ctx, "forever", 1, -1))
		require.NoError(t, c.Set(ctx, "default", 2, 0))
		time.Sleep(10 * time.Millisecond)

		v, err := c.Get(ctx, "forever")
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		_, err = c.Get(ctx, "default")
		assert.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		require.NoError(t, c.Set(ctx, "k", "a", 0))
		require.NoError(t, c.Set(ctx, "k", "b", 0))
		v, _ := c.Get(ctx, "k")
		assert.Equal(t, "b", v)
		assert.Equal(t, 1, c.Len())
	})
}

func TestMemory_DeleteClose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemory[string]()

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))

	require.NoError(t, c.Delete(ctx, "a"))
	require.NoError(t, c.Delete(ctx, "missing"))
	assert.Equal(t, 1, c.Len())
	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Set(ctx, "x", "y", 0), cache.ErrClosed)
	assert.ErrorIs(t, c.Delete(ctx, "b"), cache.ErrClosed)

	v, err := c.Get(ctx, "b")
	require.NoError(t, err, "reads still work after Close")
	assert.Equal(t, "2", v)
}

func TestMemory_MaxEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemory[int](cache.WithMaxEntries(2))
	defer c.Close()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))

	// Touch a so b becomes least recently used.
	_, err := c.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "c", 3, 0))
	assert.Equal(t, 2, c.Len())

	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, cache.ErrNotFound)
	_, err = c.Get(ctx, "a")
	assert.NoError(t, err)
}

func TestMemory_Janitor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemory[string](cache.WithCleanupInterval(5 * time.Millisecond))
	defer c.Close()

	require.NoError(t, c.Set(ctx, "short", "v", time.Millisecond))
	require.NoError(t, c.Set(ctx, "long", "v", time.Hour))

	assert.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestGetOrSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("hit skips fn", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()
		require.NoError(t, c.Set(ctx, "k", "cached", 0))

		v, err := cache.GetOrSet(ctx, c, "k", func(context.Context) (string, time.Duration, error) {
			return "", 0, errors.New("must not be called")
		})
		require.NoError(t, err)
		assert.Equal(t, "cached", v)
	})

	t.Run("miss stores result", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		v, err := cache.GetOrSet(ctx, c, "k", func(context.Context) (string, time.Duration, error) {
			return "computed", time.Minute, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "computed", v)

		stored, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "computed", stored)
	})

	t.Run("error is not stored", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()
		boom := errors.New("boom")

		_, err := cache.GetOrSet(ctx, c, "k", func(context.Context) (string, time.Duration, error) {
			return "", 0, boom
		})
		require.ErrorIs(t, err, boom)
		_, err = c.Get(ctx, "k")
		assert.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("concurrent misses share one value", func(t *testing.T) {
		t.Parallel()

		type limiter struct{ id int64 }
		c := cache.NewMemory[*limiter]()
		defer c.Close()

		var calls atomic.Int64
		var wg sync.WaitGroup
		results := make([]*limiter, 20)
		for i := range results {
			wg.Go(func() {
				l, err := cache.GetOrSet(ctx, c, "10.0.0.1", func(context.Context) (*limiter, time.Duration, error) {
					time.Sleep(10 * time.Millisecond)
					return &limiter{id: calls.Add(1)}, 0, nil
				})
				assert.NoError(t, err)
				results[i] = l
			})
		}
		wg.Wait()

		assert.Equal(t, int64(1), calls.Load())
		for _, l := range results {
			assert.Same(t, results[0], l)
		}
	})

	t.Run("same key in different caches does not collide", func(t *testing.T) {
		t.Parallel()

		a := cache.NewMemory[string]()
		b := cache.NewMemory[string]()
		defer a.Close()
		defer b.Close()

		va, err := cache.GetOrSet(ctx, a, "shared", func(context.Context) (string, time.Duration, error) { return "a", 0, nil })
		require.NoError(t, err)
		vb, err := cache.GetOrSet(ctx, b, "shared", func(context.Context) (string, time.Duration, error) { return "b", 0, nil })
		require.NoError(t, err)
		assert.Equal(t, "a", va)
		assert.Equal(t, "b", vb)
	})
}
