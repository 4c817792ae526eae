// Package previz is the web layer of the Previz studio website.
//
// It wraps chi with a Context-based handler signature, a single error
// handler, htmx-aware rendering and graceful shutdown. The site itself
// lives under site/ and the binary under cmd/previz.
//
//	app := previz.New(
//	    previz.WithCustomLogger(log),
//	    previz.WithErrorHandler(handlers.ErrorHandler),
//	    previz.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    previz.WithHandlers(handlers.NewPage(content), handlers.NewEnquiry(svc, content)),
//	    previz.WithStaticFiles("/static/", views.Assets, "static"),
//	    previz.WithHealthChecks(previz.WithReadinessCheck("mailer", svc.Ready)),
//	)
//	return app.Run(cfg.Address, previz.ShutdownHook(flushSentry))
package previz
