package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "", cfg.AI.APIKey)
	assert.Equal(t, "https://api.anthropic.com/v1/messages", cfg.AI.APIURL)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.AI.Model)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
}

func TestEnvDefaults_MatchConfigDefaults(t *testing.T) {
	// Struct tag defaults must be literals, so keep them in sync with config.go.
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host, "Host struct tag default should match DefaultHost")
	assert.Equal(t, DefaultPort, cfg.Port, "Port struct tag default should match DefaultPort")
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel, "LogLevel struct tag default should match DefaultLogLevel")
	assert.Equal(t, string(LogFormatPretty), cfg.LogFormat, "LogFormat struct tag default should match LogFormatPretty")
	assert.Equal(t, DefaultAIAPIURL, cfg.AI.APIURL, "AI.APIURL struct tag default should match DefaultAIAPIURL")
	assert.Equal(t, DefaultAIModel, cfg.AI.Model, "AI.Model struct tag default should match DefaultAIModel")
	assert.Equal(t, DefaultFrontendURL, cfg.FrontendURL, "FrontendURL struct tag default should match DefaultFrontendURL")
}

func TestLoadFromEnv_OverrideValues(t *testing.T) {
	clearEnvVars(t)

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("AI_API_KEY", "sk-test")
	t.Setenv("AI_API_URL", "http://localhost:4000/v1/messages")
	t.Setenv("AI_MODEL", "claude-test")
	t.Setenv("FRONTEND_URL", "https://paraphrase.example.com")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "http://localhost:4000/v1/messages", cfg.AI.APIURL)
	assert.Equal(t, "claude-test", cfg.AI.Model)
	assert.Equal(t, "https://paraphrase.example.com", cfg.FrontendURL)
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "not-a-number")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestEnvConfig_ToAppConfig(t *testing.T) {
	env := EnvConfig{
		Host:        "localhost",
		Port:        8081,
		LogLevel:    "WARN",
		LogFormat:   "JSON",
		AI:          AIEnv{APIKey: "k", APIURL: "http://ai.local", Model: "m"},
		FrontendURL: "http://ui.local",
	}

	cfg := env.ToAppConfig()

	assert.Equal(t, "localhost:8081", cfg.Addr())
	assert.Equal(t, "WARN", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, "k", cfg.AIAPIKey())
	assert.Equal(t, "http://ai.local", cfg.AIAPIURL())
	assert.Equal(t, "m", cfg.AIModel())
	assert.Equal(t, "http://ui.local", cfg.FrontendURL())
}

func TestEnvConfig_ToAppConfig_EmptyKeepsDefaults(t *testing.T) {
	cfg := EnvConfig{}.ToAppConfig()

	assert.Equal(t, NewAppConfig(), cfg)
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		input string
		want  LogFormat
	}{
		{"json", LogFormatJSON},
		{"JSON", LogFormatJSON},
		{"pretty", LogFormatPretty},
		{"text", LogFormatPretty},
		{"", LogFormatPretty},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogFormat(tt.input))
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	err := os.WriteFile(envFile, []byte("KEY1=value1\nKEY2=value2\n"), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)

	require.NoError(t, LoadDotEnv(envFile))

	assert.Equal(t, "value1", os.Getenv("KEY1"))
	assert.Equal(t, "value2", os.Getenv("KEY2"))
}

func TestLoadDotEnv_NonExistent(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	content := `AI_API_KEY=from-file
LOG_LEVEL=WARN
PORT=9100
`
	err := os.WriteFile(envFile, []byte(content), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.AIAPIKey())
	assert.Equal(t, "WARN", cfg.LogLevel())
	assert.Equal(t, 9100, cfg.Port())
	assert.Equal(t, DefaultAIAPIURL, cfg.AIAPIURL())
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	err := os.WriteFile(envFile, []byte("AI_MODEL=from-file\n"), 0o644)
	require.NoError(t, err)

	clearEnvVars(t)
	t.Setenv("AI_MODEL", "from-env")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AIModel())
}

// clearEnvVars unsets every variable the config reads, restoring the
// original values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()

	vars := []string{
		"HOST",
		"PORT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"AI_API_KEY",
		"AI_API_URL",
		"AI_MODEL",
		"FRONTEND_URL",
		"KEY1",
		"KEY2",
	}

	for _, v := range vars {
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}
}
