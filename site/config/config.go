// Package config loads the process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/previz/site/pkg/logger"
	"github.com/previz/site/pkg/mailer"
	"github.com/previz/site/pkg/mailer/resend"
	"github.com/previz/site/pkg/mailer/smtp"
	"github.com/previz/site/site/enquiry"
)

var (
	ErrParse   = errors.New("config: failed to parse environment")
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the whole process configuration.
// Mail credentials and recipients have no defaults; without them the relay
// refuses to send.
type Config struct {
	Address            string        `env:"ADDRESS" envDefault:":8080"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ContentFile        string        `env:"CONTENT_FILE"`
	ShowreelClips      []string      `env:"SHOWREEL_CLIPS" envSeparator:","`
	MetricsEnabled     bool          `env:"METRICS_ENABLED" envDefault:"true"`

	Log     logger.Config
	Mailer  mailer.Config
	Enquiry enquiry.Config
	SMTP    smtp.Config
	Resend  resend.Config
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, errors.Join(ErrParse, err)
	}
	cfg.Enquiry.Provider = strings.ToLower(strings.TrimSpace(cfg.Enquiry.Provider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would make the server misbehave. Missing mail
// credentials are not an error here: the relay reports them per request.
func (c Config) Validate() error {
	var errs []error
	switch c.Enquiry.Provider {
	case enquiry.ProviderSMTP, enquiry.ProviderResend:
	default:
		errs = append(errs, fmt.Errorf("MAILER_PROVIDER: unknown provider %q", c.Enquiry.Provider))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT: must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT: must be positive"))
	}
	if c.Enquiry.RatePerMinute < 0 {
		errs = append(errs, errors.New("ENQUIRY_RATE_PER_MINUTE: must not be negative"))
	}
	// Acknowledgements mail any submitted address, so they need the throttle.
	if c.Enquiry.Acknowledge && c.Enquiry.RatePerMinute == 0 {
		errs = append(errs, errors.New("ENQUIRY_ACKNOWLEDGE: requires ENQUIRY_RATE_PER_MINUTE above 0"))
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("SMTP_PORT: %d is out of range", c.SMTP.Port))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalid}, errs...)...)
}

// MailerConfigured reports whether the selected provider has credentials.
func (c Config) MailerConfigured() bool {
	if c.Enquiry.Provider == enquiry.ProviderResend {
		return c.Resend.Configured()
	}
	return c.SMTP.Configured()
}
