package rephrase

import (
	"log/slog"

	"github.com/helixml/rephrase/domain/paraphrase"
	"github.com/helixml/rephrase/infrastructure/provider"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	anthropic provider.AnthropicConfig
	provider  paraphrase.Provider
	logger    *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithAnthropic configures the Anthropic provider.
func WithAnthropic(cfg provider.AnthropicConfig) Option {
	return func(c *clientConfig) {
		c.anthropic = cfg
	}
}

// WithProvider sets a custom provider, taking precedence over WithAnthropic.
func WithProvider(p paraphrase.Provider) Option {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}
