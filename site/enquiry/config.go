package enquiry

// Provider names accepted in Config.Provider.
const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

// Config holds relay settings. Recipients has no default: an empty list
// disables delivery.
type Config struct {
	Provider      string   `env:"MAILER_PROVIDER" envDefault:"smtp"`
	Recipients    []string `env:"ENQUIRY_RECIPIENTS" envSeparator:","`
	Acknowledge   bool     `env:"ENQUIRY_ACKNOWLEDGE" envDefault:"false"`
	RatePerMinute int      `env:"ENQUIRY_RATE_PER_MINUTE" envDefault:"0"`
}

// CredentialsMessage is the visitor-facing text used when the chosen
// provider has no credentials.
func (c Config) CredentialsMessage() string {
	if c.Provider == ProviderResend {
		return "Resend credentials are not set. Please set RESEND_API_KEY and RESEND_FROM_EMAIL as environment variables"
	}
	return "SMTP credentials are not set. Please set SMTP_USER and SMTP_PASS as environment variables"
}

const recipientsMessage = "Enquiry recipients are not set. Please set ENQUIRY_RECIPIENTS as an environment variable"

// Check returns a *ConfigError when delivery is impossible: no provider
// credentials (hasCredentials false) or no recipients.
func (c Config) Check(hasCredentials bool) error {
	if !hasCredentials {
		return &ConfigError{Message: c.CredentialsMessage()}
	}
	if len(compact(c.Recipients)) == 0 {
		return &ConfigError{Message: recipientsMessage}
	}
	return nil
}
