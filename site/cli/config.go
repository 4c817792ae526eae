package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/previz/site/site/config"
)

// Summary is the printable part of the configuration. Secrets are reduced
// to whether they are set.
type Summary struct {
	Address          string   `json:"address" yaml:"address"`
	Provider         string   `json:"provider" yaml:"provider"`
	MailerConfigured bool     `json:"mailerConfigured" yaml:"mailerConfigured"`
	Recipients       []string `json:"recipients" yaml:"recipients"`
	Acknowledge      bool     `json:"acknowledge" yaml:"acknowledge"`
	RatePerMinute    int      `json:"ratePerMinute" yaml:"ratePerMinute"`
	RequestTimeout   string   `json:"requestTimeout" yaml:"requestTimeout"`
	MetricsEnabled   bool     `json:"metricsEnabled" yaml:"metricsEnabled"`
	ContentFile      string   `json:"contentFile,omitempty" yaml:"contentFile,omitempty"`
	ShowreelClips    int      `json:"showreelClips" yaml:"showreelClips"`
}

func NewSummary(c config.Config) Summary {
	return Summary{
		Address:          c.Address,
		Provider:         c.Enquiry.Provider,
		MailerConfigured: c.MailerConfigured(),
		Recipients:       c.Enquiry.Recipients,
		Acknowledge:      c.Enquiry.Acknowledge,
		RatePerMinute:    c.Enquiry.RatePerMinute,
		RequestTimeout:   c.RequestTimeout.String(),
		MetricsEnabled:   c.MetricsEnabled,
		ContentFile:      c.ContentFile,
		ShowreelClips:    len(c.ShowreelClips),
	}
}

func NewConfigCommand(cfg Config) *cobra.Command {
	var (
		outputFormat string
		check        bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  "Show the configuration read from the environment. With --check, exit non-zero when enquiries cannot be delivered.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cfg.LoadConfig()
			if err != nil {
				return err
			}

			s := NewSummary(c)
			w := cmd.OutOrStdout()
			if outputFormat != "" {
				if err := write(w, outputFormat, s); err != nil {
					return err
				}
			} else {
				recipients := strings.Join(s.Recipients, ", ")
				if recipients == "" {
					recipients = "(none)"
				}
				_, _ = fmt.Fprintf(w, "address:     %s\n", s.Address)
				_, _ = fmt.Fprintf(w, "provider:    %s (configured: %t)\n", s.Provider, s.MailerConfigured)
				_, _ = fmt.Fprintf(w, "recipients:  %s\n", recipients)
				limit := "off"
				if s.RatePerMinute > 0 {
					limit = fmt.Sprintf("%d/min", s.RatePerMinute)
				}
				_, _ = fmt.Fprintf(w, "rate limit:  %s\n", limit)
			}

			if check {
				return c.Enquiry.Check(c.MailerConfigured())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: json, yaml")
	cmd.Flags().BoolVar(&check, "check", false, "Fail when mail delivery is not configured")

	return cmd
}
