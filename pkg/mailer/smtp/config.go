package smtp

// Config holds SMTP provider settings.
// Username and Password have no defaults; a sender is never built without them.
type Config struct {
	Host      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port      int    `env:"SMTP_PORT" envDefault:"465"`
	Username  string `env:"SMTP_USER"`
	Password  string `env:"SMTP_PASS"`
	FromEmail string `env:"SMTP_FROM_EMAIL"` // defaults to Username
	FromName  string `env:"SMTP_FROM_NAME" envDefault:"Previz Website"`
}

// Configured reports whether credentials are present.
func (c Config) Configured() bool {
	return c.Username != "" && c.Password != ""
}

func (c Config) fromAddress() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.Username
}
