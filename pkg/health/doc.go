// Package health serves liveness and readiness checks.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"mailer": func(ctx context.Context) error { return mailerReady() },
//	}))
//
// Readiness runs every check concurrently under one timeout and answers 503
// when any fails. Responses are plain text ("OK" / "Service Unavailable")
// unless the client asks for JSON with Accept: application/json or
// ?format=json.
package health
