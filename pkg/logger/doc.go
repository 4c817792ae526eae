// Package logger builds the application's slog.Logger.
//
// Output is JSON (or text) on stdout. A [LogHandlerDecorator] injects
// request-scoped attributes through [ContextExtractor] functions, so a
// request ID set by middleware shows up on every log line of that request:
//
//	log := logger.NewFromConfig(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "enquiry sent")
//	// {"level":"INFO","msg":"enquiry sent","request_id":"01J..."}
//
// When SENTRY_DSN is set, records are also forwarded to Sentry: errors become
// issues, warnings are stored as logs. Without a DSN the Sentry path is skipped.
package logger
