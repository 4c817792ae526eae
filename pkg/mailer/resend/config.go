package resend

// Config holds Resend provider settings.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME" envDefault:"Previz Website"`
}

// Configured reports whether an API key and sender address are present.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.SenderEmail != ""
}
