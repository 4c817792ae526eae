package middlewares

import (
	"context"
	"math"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/previz/site/internal"
	"github.com/previz/site/pkg/cache"
)

// DefaultRateLimitIdleTTL is how long an idle client's limiter is kept.
const DefaultRateLimitIdleTTL = 10 * time.Minute

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	Store     cache.Cache[*rate.Limiter] // Limiter per client key
	OnReject  func(c internal.Context)   // Called for every rejected request
	Extractor internal.Extractor         // Client key, defaults to the client IP
	IdleTTL   time.Duration              // Limiter lifetime after the last request
	Message   string                     // 429 message
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimitStore sets the limiter store. The caller owns its lifecycle.
func WithRateLimitStore(store cache.Cache[*rate.Limiter]) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		if store != nil {
			cfg.Store = store
		}
	}
}

// WithRateLimitKey sets the sources used to identify a client.
func WithRateLimitKey(sources ...internal.ExtractorSource) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Extractor = internal.NewExtractor(sources...)
	}
}

// WithRateLimitOnReject registers a callback for rejected requests.
func WithRateLimitOnReject(fn func(c internal.Context)) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.OnReject = fn
	}
}

// WithRateLimitMessage sets the message of the 429 error.
func WithRateLimitMessage(msg string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		if msg != "" {
			cfg.Message = msg
		}
	}
}

// RateLimit allows each client perMinute requests per minute with a burst
// of perMinute. perMinute <= 0 disables limiting. Rejected requests get a
// 429 *internal.HTTPError and a Retry-After header.
func RateLimit(perMinute int, opts ...RateLimitOption) internal.Middleware {
	if perMinute <= 0 {
		return func(next internal.HandlerFunc) internal.HandlerFunc { return next }
	}

	cfg := &RateLimitConfig{
		Extractor: internal.NewExtractor(internal.FromClientIP()),
		IdleTTL:   DefaultRateLimitIdleTTL,
		Message:   "Too many requests. Please try again later.",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Store == nil {
		cfg.Store = cache.NewMemory[*rate.Limiter](
			cache.WithDefaultTTL(cfg.IdleTTL),
			cache.WithMaxEntries(10_000),
		)
	}

	every := time.Minute / time.Duration(perMinute)
	retryAfter := strconv.Itoa(int(math.Ceil(every.Seconds())))

	newLimiter := func(context.Context) (*rate.Limiter, time.Duration, error) {
		return rate.NewLimiter(rate.Every(every), perMinute), cfg.IdleTTL, nil
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			key, ok := cfg.Extractor.Extract(c)
			if !ok {
				return next(c)
			}

			lim, err := cache.GetOrSet(c, cfg.Store, key, newLimiter)
			if err != nil {
				c.LogWarn("rate limiter unavailable", "error", err)
				return next(c)
			}
			// Refresh so active clients keep their bucket.
			if err := cfg.Store.Set(c, key, lim, cfg.IdleTTL); err != nil {
				c.LogWarn("rate limiter refresh failed", "error", err)
			}

			if lim.Allow() {
				return next(c)
			}

			if cfg.OnReject != nil {
				cfg.OnReject(c)
			}
			c.SetHeader("Retry-After", retryAfter)
			return internal.ErrTooManyRequests(cfg.Message, internal.WithErrorCode("rate_limited"))
		}
	}
}
