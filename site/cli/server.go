package cli

import (
	"errors"
	"fmt"
	"log/slog"

	previz "github.com/previz/site"
	"github.com/previz/site/middlewares"
	"github.com/previz/site/pkg/mailer"
	"github.com/previz/site/pkg/mailer/resend"
	"github.com/previz/site/pkg/mailer/smtp"
	"github.com/previz/site/pkg/metrics"
	"github.com/previz/site/site/config"
	"github.com/previz/site/site/content"
	"github.com/previz/site/site/enquiry"
	"github.com/previz/site/site/handlers"
	"github.com/previz/site/site/views"
)

// Server is the assembled site.
type Server struct {
	App     *previz.App
	Service *enquiry.Service
	Metrics *metrics.Metrics
}

// NewServer wires content, mail delivery, metrics and handlers from cfg.
// Missing mail credentials are not an error: the relay is built without a
// mailer and refuses every enquiry.
func NewServer(cfg config.Config, log *slog.Logger) (*Server, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	c = c.WithClipURLs(cfg.ShowreelClips)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(metrics.NewRegistry())
	}

	sender, err := newSender(cfg)
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		log.Warn("mail delivery disabled", slog.String("provider", cfg.Enquiry.Provider), slog.Any("error", err))
	case err != nil:
		return nil, err
	}

	var ml *mailer.Mailer
	if sender != nil {
		ml = enquiry.NewMailer(m.InstrumentSender(sender, cfg.Enquiry.Provider), cfg.Mailer)
	}
	svc := enquiry.NewService(cfg.Enquiry, ml, enquiry.WithLogger(log))
	if err := svc.Configured(); err != nil {
		log.Warn("enquiries will be refused", slog.Any("error", err))
	}

	mw := []previz.Middleware{
		middlewares.RequestID(),
		middlewares.Recover(),
		middlewares.AccessLog(),
	}
	if m != nil {
		mw = append(mw, middlewares.Metrics(m))
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		mw = append(mw, middlewares.CORS(cfg.CORSAllowedOrigins))
	}
	mw = append(mw, middlewares.Timeout(cfg.RequestTimeout))

	opts := []previz.Option{
		previz.WithCustomLogger(log),
		previz.WithErrorHandler(handlers.ErrorHandler),
		previz.WithNotFoundHandler(handlers.NotFound),
		previz.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		previz.WithMiddleware(mw...),
		previz.WithHandlers(
			handlers.NewPage(c),
			handlers.NewEnquiry(svc, c,
				handlers.WithMetrics(m),
				handlers.WithRateLimit(cfg.Enquiry.RatePerMinute),
			),
		),
		previz.WithStaticFiles("/static/", views.Assets, "static"),
		previz.WithHealthChecks(previz.WithReadinessCheck("mailer", svc.Ready)),
	}
	if m != nil {
		opts = append(opts, previz.WithMount("/metrics", m.Handler()))
	}

	return &Server{
		App:     previz.New(opts...),
		Service: svc,
		Metrics: m,
	}, nil
}

func newSender(cfg config.Config) (mailer.Sender, error) {
	switch cfg.Enquiry.Provider {
	case enquiry.ProviderResend:
		s, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, err
		}
		return s, nil
	case enquiry.ProviderSMTP:
		s, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Enquiry.Provider)
	}
}
