package enquiry

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/previz/site/pkg/logger"
	"github.com/previz/site/pkg/mailer"
)

//go:embed templates
var templates embed.FS

// Template names inside Templates.
const (
	TemplateEnquiry         = "enquiry.html"
	TemplateAcknowledgement = "acknowledgement.md"
)

// Templates holds the email templates and their layouts.
var Templates = mustSub(templates, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// NewMailer returns a Mailer that renders the embedded templates.
func NewMailer(sender mailer.Sender, cfg mailer.Config) *mailer.Mailer {
	return mailer.New(sender, mailer.NewRenderer(Templates), cfg)
}

// Service validates enquiries and relays them.
type Service struct {
	mailer *mailer.Mailer
	logger *slog.Logger
	config Config
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. A nil mailer means the provider has no
// credentials; Submit then fails with a ConfigError and sends nothing.
func NewService(cfg Config, m *mailer.Mailer, opts ...Option) *Service {
	s := &Service{
		mailer: m,
		config: cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.config.Recipients = compact(cfg.Recipients)
	return s
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.config
}

// Configured reports whether Submit can deliver.
func (s *Service) Configured() error {
	return s.config.Check(s.mailer != nil)
}

// Ready is a readiness check reporting whether delivery is configured.
func (s *Service) Ready(context.Context) error {
	return s.Configured()
}

// Submit validates e and sends it to the configured recipients in a single
// attempt. Returned errors are validator.ValidationErrors, *ConfigError or
// *DeliveryError.
func (s *Service) Submit(ctx context.Context, e Enquiry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.Configured(); err != nil {
		s.logger.ErrorContext(ctx, "enquiry relay not configured", slog.Any("error", err))
		return err
	}

	params := mailer.SendParams{
		To:       s.recipients(),
		Template: TemplateEnquiry,
		Data:     e,
		Tags:     mailer.Tags{"category": "enquiry"},
	}
	if e.HasEmail() {
		params.ReplyTo = mailer.Recipient(e.Name, e.Email)
	}

	start := time.Now()
	if err := s.mailer.Send(ctx, params); err != nil {
		s.logger.ErrorContext(ctx, "failed to send enquiry",
			slog.Any("error", err),
			slog.Duration("duration", time.Since(start)))
		return &DeliveryError{Err: err}
	}
	s.logger.InfoContext(ctx, "enquiry sent",
		slog.Int("recipients", len(params.To)),
		slog.Bool("has_email", e.HasEmail()),
		slog.Duration("duration", time.Since(start)))

	if s.config.Acknowledge && e.HasEmail() {
		s.acknowledge(ctx, e)
	}
	return nil
}

// acknowledge thanks the visitor. The template gets no visitor data: its
// markdown is not escaped. Failures are logged and never change the outcome
// of the enquiry.
func (s *Service) acknowledge(ctx context.Context, e Enquiry) {
	err := s.mailer.Send(ctx, mailer.SendParams{
		To:       []string{e.Email},
		Template: TemplateAcknowledgement,
		Tags:     mailer.Tags{"category": "acknowledgement"},
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to send acknowledgement", slog.Any("error", err))
	}
}

// recipients returns a copy so concurrent sends never share a slice.
func (s *Service) recipients() []string {
	return append([]string(nil), s.config.Recipients...)
}

func compact(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
