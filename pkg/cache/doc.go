// Package cache provides a generic in-memory key-value cache with TTL
// expiration and optional LRU eviction.
//
//	limiters := cache.NewMemory[*rate.Limiter](
//		cache.WithDefaultTTL(10*time.Minute),
//		cache.WithMaxEntries(10_000),
//	)
//	defer limiters.Close()
//
//	lim, err := cache.GetOrSet(ctx, limiters, clientIP, func(context.Context) (*rate.Limiter, time.Duration, error) {
//		return rate.NewLimiter(rate.Every(time.Minute/5), 5), 0, nil
//	})
//
// TTL passed to Set: positive expires after the duration, zero uses the
// default TTL, negative never expires. A background janitor drops expired
// entries; Close stops it.
package cache
