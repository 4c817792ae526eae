package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	previz "github.com/previz/site"
	"github.com/previz/site/middlewares"
	"github.com/previz/site/pkg/logger"
)

const sentryFlushTimeout = 2 * time.Second

func NewServeCommand(cfg Config) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the website and the enquiry relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cfg.LoadConfig()
			if err != nil {
				return err
			}
			if address != "" {
				c.Address = address
			}

			log := logger.NewFromConfig(c.Log, middlewares.RequestIDExtractor())
			srv, err := NewServer(c, log)
			if err != nil {
				log.Error("failed to build server", slog.Any("error", err))
				return err
			}

			log.Info("starting previz",
				slog.String("version", Version),
				slog.String("provider", c.Enquiry.Provider),
				slog.Bool("metrics", c.MetricsEnabled),
			)
			opts := []previz.RunOption{previz.ShutdownTimeout(c.ShutdownTimeout)}
			if ctx := cmd.Context(); ctx != nil {
				opts = append(opts, previz.WithContext(ctx))
			}
			if c.Log.Sentry.DSN != "" {
				opts = append(opts, previz.ShutdownHook(func(context.Context) error {
					sentry.Flush(sentryFlushTimeout)
					return nil
				}))
			}
			return srv.App.Run(c.Address, opts...)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address, overrides ADDRESS")

	return cmd
}
