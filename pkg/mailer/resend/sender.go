// Package resend implements mailer.Sender on the Resend HTTP API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/previz/site/pkg/mailer"
)

// Sender delivers mail through Resend.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a Sender. It returns mailer.ErrNotConfigured when the API key
// or sender address is missing.
func New(cfg Config) (*Sender, error) {
	if !cfg.Configured() {
		return nil, mailer.ErrNotConfigured
	}
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	_, err := s.client.Emails.SendWithContext(ctx, s.buildRequest(email))
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

func (s *Sender) buildRequest(email *mailer.Email) *resend.SendEmailRequest {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	for name, value := range email.Tags {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: value})
	}
	return req
}
