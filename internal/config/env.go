package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// AI configures the language model provider.
	AI AIEnv `envconfig:"AI"`

	// FrontendURL is the origin allowed to call the API from a browser.
	// Env: FRONTEND_URL (default: http://localhost:3000)
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

// AIEnv holds environment configuration for the provider.
type AIEnv struct {
	// APIKey is the provider credential.
	// Env: AI_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// APIURL is the full messages endpoint.
	// Env: AI_API_URL (default: https://api.anthropic.com/v1/messages)
	APIURL string `envconfig:"API_URL" default:"https://api.anthropic.com/v1/messages"`

	// Model is the model identifier.
	// Env: AI_MODEL (default: claude-3-haiku-20240307)
	Model string `envconfig:"MODEL" default:"claude-3-haiku-20240307"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	var opts []AppConfigOption

	if e.Host != "" {
		opts = append(opts, WithHost(e.Host))
	}
	if e.Port != 0 {
		opts = append(opts, WithPort(e.Port))
	}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.AI.APIKey != "" {
		opts = append(opts, WithAIAPIKey(e.AI.APIKey))
	}
	if e.AI.APIURL != "" {
		opts = append(opts, WithAIAPIURL(e.AI.APIURL))
	}
	if e.AI.Model != "" {
		opts = append(opts, WithAIModel(e.AI.Model))
	}
	if e.FrontendURL != "" {
		opts = append(opts, WithFrontendURL(e.FrontendURL))
	}

	return NewAppConfigWithOptions(opts...)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
