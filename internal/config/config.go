// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
)

// Default configuration values.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultAIAPIURL    = "https://api.anthropic.com/v1/messages"
	DefaultAIModel     = "claude-3-haiku-20240307"
	DefaultFrontendURL = "http://localhost:3000"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the process-wide configuration. It is built once at
// startup and passed by value; nothing mutates it afterwards.
type AppConfig struct {
	host        string
	port        int
	logLevel    string
	logFormat   LogFormat
	aiAPIKey    string
	aiAPIURL    string
	aiModel     string
	frontendURL string
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:        DefaultHost,
		port:        DefaultPort,
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		aiAPIURL:    DefaultAIAPIURL,
		aiModel:     DefaultAIModel,
		frontendURL: DefaultFrontendURL,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// AIAPIKey returns the provider credential. Empty when unset.
func (c AppConfig) AIAPIKey() string { return c.aiAPIKey }

// AIAPIURL returns the provider messages endpoint.
func (c AppConfig) AIAPIURL() string { return c.aiAPIURL }

// AIModel returns the provider model identifier.
func (c AppConfig) AIModel() string { return c.aiModel }

// FrontendURL returns the single origin allowed by the CORS policy.
func (c AppConfig) FrontendURL() string { return c.frontendURL }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithAIAPIKey sets the provider credential.
func WithAIAPIKey(key string) AppConfigOption {
	return func(c *AppConfig) { c.aiAPIKey = key }
}

// WithAIAPIURL sets the provider endpoint.
func WithAIAPIURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.aiAPIURL = url }
}

// WithAIModel sets the provider model.
func WithAIModel(model string) AppConfigOption {
	return func(c *AppConfig) { c.aiModel = model }
}

// WithFrontendURL sets the allowed CORS origin.
func WithFrontendURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.frontendURL = url }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// The API key is never included, only whether one is set.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.String("ai_api_url", c.aiAPIURL),
		slog.String("ai_model", c.aiModel),
		slog.Bool("ai_api_key_set", c.aiAPIKey != ""),
		slog.String("frontend_url", c.frontendURL),
	}
}
