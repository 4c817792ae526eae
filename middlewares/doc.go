// Package middlewares provides the HTTP middleware used by the Previz site.
//
// # Ordering
//
// Global middleware runs in the order it is passed to WithMiddleware. The
// site installs:
//
//	previz.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog(),
//	    middlewares.Metrics(m),
//	    middlewares.Recover(),
//	    middlewares.CORS(cfg.CORSAllowedOrigins),
//	    middlewares.Timeout(cfg.RequestTimeout),
//	)
//
// RequestID goes first so every later log record carries request_id when
// the logger was built with RequestIDExtractor.
//
// # Errors
//
// Recover, Timeout and RateLimit report failures as returned errors
// rather than writing responses: *PanicError, *TimeoutError and a 429
// *internal.HTTPError. The application's ErrorHandler renders them:
//
//	if pe, ok := middlewares.AsPanicError(err); ok {
//	    c.LogError("panic", "value", pe.Value)
//	    return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
//	}
//
// # Rate limiting
//
// RateLimit keeps one token bucket per client IP in a cache.Memory and is
// applied per route:
//
//	r.POST("/api/send-email", h.send, middlewares.RateLimit(cfg.EnquiryRatePerMinute))
package middlewares
