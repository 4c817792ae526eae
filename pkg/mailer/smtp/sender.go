// Package smtp implements mailer.Sender over a plain SMTP connection.
//
// Every Send dials a fresh connection, delivers one message and closes it.
// Port 465 uses implicit TLS; other ports upgrade with STARTTLS when the
// server offers it.
package smtp

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/previz/site/pkg/mailer"
)

// Sender delivers mail through an SMTP server.
type Sender struct {
	transport transport
	config    Config
}

// New creates a Sender. It returns mailer.ErrNotConfigured when credentials
// are missing.
func New(cfg Config) (*Sender, error) {
	if !cfg.Configured() {
		return nil, mailer.ErrNotConfigured
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: SMTP host is empty", mailer.ErrNotConfigured)
	}
	return &Sender{
		transport: newNetTransport(cfg),
		config:    cfg,
	}, nil
}

// Send implements mailer.Sender. The connection is bound to ctx: when ctx
// ends, pending I/O fails and Send returns ctx.Err(). A message the server
// accepted before that point is still delivered.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.transport.Deliver(ctx, s.buildMessage(email))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("smtp: %w (%v)", ctxErr, err)
	}
	return fmt.Errorf("smtp: %w", err)
}

func (s *Sender) buildMessage(email *mailer.Email) *gomail.Message {
	m := gomail.NewMessage()

	if email.From != "" {
		m.SetHeader("From", email.From)
	} else {
		m.SetAddressHeader("From", s.config.fromAddress(), s.config.FromName)
	}
	m.SetHeader("To", email.To...)
	if len(email.CC) > 0 {
		m.SetHeader("Cc", email.CC...)
	}
	if len(email.BCC) > 0 {
		m.SetHeader("Bcc", email.BCC...)
	}
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	for k, v := range email.Headers {
		m.SetHeader(k, v)
	}
	for k, v := range email.Tags {
		m.SetHeader("X-Tag-"+headerCase(k), v)
	}

	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	} else {
		m.SetBody("text/html", email.HTML)
	}

	return m
}

func headerCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, "-")
}
