package metrics

import (
	"context"
	"time"

	"github.com/previz/site/pkg/mailer"
)

// InstrumentSender wraps s so every send is counted and timed under provider.
func (m *Metrics) InstrumentSender(s mailer.Sender, provider string) mailer.Sender {
	if m == nil {
		return s
	}
	return mailer.SenderFunc(func(ctx context.Context, email *mailer.Email) error {
		start := time.Now()
		err := s.Send(ctx, email)
		m.ObserveMailSend(provider, err, time.Since(start))
		return err
	})
}
