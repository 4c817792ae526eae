package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/previz/site/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context with d (DefaultTimeout if d <= 0).
// The handler runs on the caller's goroutine and must honour
// cancellation. A handler that returns after the deadline without having
// written a response yields a *TimeoutError.
func Timeout(d time.Duration) internal.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if c.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return err
			}

			c.LogWarn("request timeout", "timeout", d.String())
			return errors.Join(&TimeoutError{Duration: d}, err)
		}
	}
}
