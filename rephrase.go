// Package rephrase provides a library for paraphrasing text with a hosted
// language model.
//
// Basic usage:
//
//	client := rephrase.New(
//	    rephrase.WithAnthropic(provider.AnthropicConfig{
//	        APIKey: os.Getenv("AI_API_KEY"),
//	    }),
//	)
//
//	resp, err := client.Paraphrase.Rewrite(ctx, paraphrase.NewRequest("The quick brown fox."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Text())
package rephrase

import (
	"log/slog"

	"github.com/helixml/rephrase/application/service"
	"github.com/helixml/rephrase/domain/paraphrase"
	"github.com/helixml/rephrase/infrastructure/provider"
)

// Client is the main entry point for the rephrase library.
type Client struct {
	// Paraphrase validates requests and forwards them to the provider.
	Paraphrase *service.Paraphrase

	provider paraphrase.Provider
	logger   *slog.Logger
}

// New creates a new Client with the given options.
// Without a provider option it uses the Anthropic provider with no API key,
// so every paraphrase call fails with an InternalServerError until one is set.
func New(opts ...Option) *Client {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	p := cfg.provider
	if p == nil {
		anthropicCfg := cfg.anthropic
		if anthropicCfg.Logger == nil {
			anthropicCfg.Logger = logger
		}
		p = provider.NewAnthropicProvider(anthropicCfg)
	}

	return &Client{
		Paraphrase: service.NewParaphrase(p, logger),
		provider:   p,
		logger:     logger,
	}
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Provider returns the provider used for paraphrasing.
func (c *Client) Provider() paraphrase.Provider {
	return c.provider
}
