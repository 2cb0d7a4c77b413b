// Package main is the entry point for the rephrase CLI.
package main

import (
	"fmt"
	"os"

	"github.com/helixml/rephrase"
	"github.com/helixml/rephrase/infrastructure/provider"
	"github.com/helixml/rephrase/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rephrase",
		Short:         "Paraphrasing API server",
		Long:          `Rephrase is a small HTTP backend that paraphrases text with the Anthropic Messages API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(rewriteCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// clientOptions translates the application config into rephrase options.
func clientOptions(cfg config.AppConfig) []rephrase.Option {
	return []rephrase.Option{
		rephrase.WithAnthropic(provider.AnthropicConfig{
			APIKey: cfg.AIAPIKey(),
			URL:    cfg.AIAPIURL(),
			Model:  cfg.AIModel(),
		}),
	}
}
