// Package service provides application layer services that orchestrate domain operations.
package service

import (
	"context"
	"log/slog"

	"github.com/helixml/rephrase/domain/paraphrase"
)

// Paraphrase validates paraphrase requests and forwards them to a provider.
type Paraphrase struct {
	provider paraphrase.Provider
	logger   *slog.Logger
}

// NewParaphrase creates a new Paraphrase service.
func NewParaphrase(provider paraphrase.Provider, logger *slog.Logger) *Paraphrase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Paraphrase{
		provider: provider,
		logger:   logger,
	}
}

// Rewrite paraphrases the request text. Blank text is rejected with an
// InvalidInput error before the provider is called.
//
// The provider call is detached from ctx cancellation so that a client
// disconnect does not abort an in-flight request; context values are kept.
func (s *Paraphrase) Rewrite(ctx context.Context, req paraphrase.Request) (paraphrase.Response, error) {
	if err := req.Validate(); err != nil {
		return paraphrase.Response{}, err
	}

	text, err := s.provider.Paraphrase(context.WithoutCancel(ctx), req.Text())
	if err != nil {
		s.logger.WarnContext(ctx, "paraphrase failed",
			slog.String("kind", paraphrase.KindOf(err).String()),
			slog.Any("error", err),
		)
		return paraphrase.Response{}, err
	}

	s.logger.DebugContext(ctx, "paraphrase completed",
		slog.Int("input_chars", len(req.Text())),
		slog.Int("output_chars", len(text)),
	)
	return paraphrase.NewResponse(text), nil
}
