package middlewares

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/previz/site/internal"
)

// HTTPObserver records per-request measurements. *metrics.Metrics implements it.
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, d time.Duration)
}

// routePattern returns the matched chi pattern, or "unmatched" so unknown
// paths do not create unbounded label values.
func routePattern(c internal.Context) string {
	if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// status reports the status the handler chose. A returned error that has
// not been rendered yet counts as its HTTPError code, or 500.
func status(c internal.Context, err error) int {
	if err != nil && !c.Written() {
		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			return httpErr.Code
		}
		return 500
	}
	return c.ResponseWriter().Status()
}

// AccessLog logs one record per request once it completes.
// 5xx responses are logged at error level, 4xx at warn.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			code := status(c, err)
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.String("route", routePattern(c)),
				slog.Int("status", code),
				slog.Int64("bytes", c.ResponseWriter().Size()),
				slog.Duration("duration", time.Since(start)),
				slog.String("client_ip", c.ClientIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			switch {
			case code >= 500:
				c.LogError("request completed", attrs...)
			case code >= 400:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}

// Metrics reports method, route pattern, status and latency to obs.
// A nil obs disables the middleware.
func Metrics(obs HTTPObserver) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		if obs == nil {
			return next
		}
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)
			obs.ObserveHTTP(c.Request().Method, routePattern(c), strconv.Itoa(status(c, err)), time.Since(start))
			return err
		}
	}
}
