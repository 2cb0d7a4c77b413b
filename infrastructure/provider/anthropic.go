// Package provider implements the outbound client for the language model API.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/helixml/rephrase/domain/paraphrase"
)

// Anthropic API defaults.
const (
	DefaultAnthropicURL     = "https://api.anthropic.com/v1/messages"
	DefaultAnthropicModel   = "claude-3-haiku-20240307"
	DefaultAnthropicVersion = "2023-06-01"

	// MaxTokens caps the number of generated tokens per request.
	MaxTokens = 1024
	// Temperature favours varied phrasing over verbatim repetition.
	Temperature = 0.7

	providerName = "Anthropic API"
)

// Client-facing messages.
const (
	MessageMissingAPIKey = "AI API key not configured"
	messageUnknownError  = "Unknown error"
)

// AnthropicConfig holds configuration for the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	// URL is the full messages endpoint, not a base URL.
	URL   string
	Model string
	// HTTPClient defaults to a client without a timeout.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// AnthropicProvider paraphrases text with the Anthropic Messages API.
// Each call issues exactly one request and is never retried.
type AnthropicProvider struct {
	apiKey     string
	url        string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAnthropicProvider creates a provider from configuration, filling defaults
// for every empty field except the API key.
func NewAnthropicProvider(cfg AnthropicConfig) *AnthropicProvider {
	url := cfg.URL
	if url == "" {
		url = DefaultAnthropicURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AnthropicProvider{
		apiKey:     cfg.APIKey,
		url:        url,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
}

// URL returns the messages endpoint.
func (p *AnthropicProvider) URL() string { return p.url }

// Model returns the model identifier.
func (p *AnthropicProvider) Model() string { return p.model }

// anthropicRequest represents the Anthropic API request body.
type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

// anthropicMessage represents a message in the Anthropic API.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (p *AnthropicProvider) newRequest(text string) anthropicRequest {
	return anthropicRequest{
		Model:  p.model,
		System: SystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: UserPrompt(text)},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
}

// Paraphrase rewrites text and returns the trimmed result.
func (p *AnthropicProvider) Paraphrase(ctx context.Context, text string) (string, error) {
	if p.apiKey == "" {
		return "", paraphrase.NewInternalError(MessageMissingAPIKey)
	}

	body, err := json.Marshal(p.newRequest(text))
	if err != nil {
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("Failed to call %s: %v", providerName, err), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("Failed to call %s: %v", providerName, err), err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", DefaultAnthropicVersion)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("Failed to call %s: %v", providerName, err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody := messageUnknownError
		if b, readErr := io.ReadAll(resp.Body); readErr == nil {
			errBody = string(b)
		}
		p.logger.WarnContext(ctx, "provider returned error status",
			slog.Int("status", resp.StatusCode),
			slog.String("model", p.model),
		)
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("%s returned an error: %s", providerName, errBody), nil)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("Failed to parse %s response: %v", providerName, err), err)
	}

	result, err := ParseContent(respBody)
	if err != nil {
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("Failed to parse %s response: %v", providerName, err), err)
	}

	extracted, ok := result.Text()
	if !ok {
		p.logger.WarnContext(ctx, "provider response has unexpected shape",
			slog.String("reason", result.Reason()),
		)
		return "", paraphrase.NewAIServiceError(fmt.Sprintf("%s returned an invalid response format", providerName), nil)
	}

	return strings.TrimSpace(extracted), nil
}

// Ensure AnthropicProvider implements the domain port.
var _ paraphrase.Provider = (*AnthropicProvider)(nil)
