package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Provider.Name)
	assert.Equal(t, "gpt-4.1", cfg.Provider.Model)
	assert.Equal(t, 90*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, OutputPassthrough, cfg.Provider.OutputMode)
	assert.Equal(t, 10, cfg.Provider.MaxItems)
	assert.True(t, cfg.Provider.WebSearch)
	assert.Equal(t, "/images", cfg.HTTP.StaticPrefix)
	assert.Equal(t, time.Hour, cfg.Redis.ConversationTTL)
	assert.False(t, cfg.Provider.NeedsConversationStore())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ACCESS_CODE", "jeju2024")
	t.Setenv("PROVIDER_NAME", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("PROVIDER_TIMEOUT", "30s")
	t.Setenv("PROVIDER_OUTPUT_MODE", "STRICT")
	t.Setenv("REDIS_CONVERSATION_TTL", "10m")
	t.Setenv("HTTP_STATIC_PREFIX", "static")
	t.Setenv("PORT", "9090")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "jeju2024", cfg.Access.Code)
	assert.Equal(t, ProviderGemini, cfg.Provider.Name)
	assert.Equal(t, "gemini-2.5-flash", cfg.Provider.Model)
	assert.Equal(t, "g-key", cfg.Provider.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, OutputStrict, cfg.Provider.OutputMode)
	assert.Equal(t, 10*time.Minute, cfg.Redis.ConversationTTL)
	assert.Equal(t, "/static", cfg.HTTP.StaticPrefix)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.Provider.NeedsConversationStore())
}

func TestLoad_ExplicitModelWins(t *testing.T) {
	t.Setenv("PROVIDER_NAME", "ollama")
	t.Setenv("PROVIDER_MODEL", "llama3.1:8b")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "llama3.1:8b", cfg.Provider.Model)
}

func TestLoad_ZeroTimeoutAllowed(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "0s")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Zero(t, cfg.Provider.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"unknown provider": {"PROVIDER_NAME", "cohere"},
		"unknown mode":     {"PROVIDER_OUTPUT_MODE", "lenient"},
		"negative timeout": {"PROVIDER_TIMEOUT", "-1s"},
		"negative ttl":     {"REDIS_CONVERSATION_TTL", "-5m"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := load(viper.New())
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoad_EmptyAllowedOriginRejected(t *testing.T) {
	v := viper.New()
	v.Set("http.allowed_origin", " ")

	_, err := load(v)
	assert.ErrorContains(t, err, "http.allowed_origin")
}
