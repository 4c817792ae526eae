package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

const dialTimeout = 10 * time.Second

// transport delivers one built message.
type transport interface {
	Deliver(ctx context.Context, msg *gomail.Message) error
}

// netTransport speaks SMTP over a connection bound to the caller's context.
type netTransport struct {
	host     string
	port     int
	username string
	password string
	ssl      bool
}

func newNetTransport(cfg Config) *netTransport {
	return &netTransport{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		ssl:      cfg.Port == 465,
	}
}

func (t *netTransport) Deliver(ctx context.Context, msg *gomail.Message) error {
	d := net.Dialer{Timeout: dialTimeout}
	raw, err := d.DialContext(ctx, "tcp", net.JoinHostPort(t.host, strconv.Itoa(t.port)))
	if err != nil {
		return err
	}
	defer raw.Close()

	// Ending ctx, by deadline or cancel, fails pending reads and writes.
	stop := context.AfterFunc(ctx, func() {
		_ = raw.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	conn := raw
	if t.ssl {
		conn = tls.Client(raw, t.tlsConfig())
	}
	c, err := smtp.NewClient(conn, t.host)
	if err != nil {
		return err
	}
	defer c.Close()

	if !t.ssl {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(t.tlsConfig()); err != nil {
				return err
			}
		}
	}
	if ok, _ := c.Extension("AUTH"); ok {
		if err := c.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
			return err
		}
	}

	send := gomail.SendFunc(func(from string, to []string, m io.WriterTo) error {
		if err := c.Mail(from); err != nil {
			return err
		}
		for _, rcpt := range to {
			if err := c.Rcpt(rcpt); err != nil {
				return fmt.Errorf("recipient %s: %w", rcpt, err)
			}
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err := m.WriteTo(w); err != nil {
			return errors.Join(err, w.Close())
		}
		return w.Close()
	})
	if err := gomail.Send(send, msg); err != nil {
		return err
	}
	return c.Quit()
}

func (t *netTransport) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: t.host, MinVersion: tls.VersionTLS12}
}
