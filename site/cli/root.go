// Package cli holds the cobra commands of the previz binary.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/previz/site/site/config"
)

// Config configures the root command.
type Config struct {
	OutputWriter io.Writer
	// LoadConfig defaults to config.Load.
	LoadConfig func() (config.Config, error)
}

func DefaultConfig() Config {
	return Config{
		OutputWriter: os.Stdout,
		LoadConfig:   config.Load,
	}
}

// NewRootCommand returns the previz command. Without a subcommand it serves
// the site.
func NewRootCommand(cfg Config) *cobra.Command {
	if cfg.LoadConfig == nil {
		cfg.LoadConfig = config.Load
	}

	serve := NewServeCommand(cfg)
	root := &cobra.Command{
		Use:           "previz",
		Short:         "Previz studio website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	if cfg.OutputWriter != nil {
		root.SetOut(cfg.OutputWriter)
	}

	root.AddCommand(
		serve,
		NewConfigCommand(cfg),
		NewVersionCommand(),
	)
	return root
}
