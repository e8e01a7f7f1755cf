package cliconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvConfigOverridesDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "env-key")
	t.Setenv("OPENROUTER_MODEL", "env/model")
	t.Setenv("SYSTEM_PROMPT", "env prompt")
	t.Setenv("BATCH_SIZE", "10")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("RETRY_DELAY", "2500")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("MAX_TOKENS", "2000")
	t.Setenv("HTTP_TIMEOUT", "90s")
	t.Setenv("TEMP_DIR", "/tmp/satzgen-cache")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{}))

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "env/model", cfg.Model)
	assert.Equal(t, "env prompt", cfg.SystemPrompt)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 2500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.Equal(t, 90*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/satzgen-cache", cfg.CacheDir)
}

func TestApplyEnvConfigRespectsChangedFlags(t *testing.T) {
	t.Setenv("OPENROUTER_MODEL", "env/model")
	t.Setenv("BATCH_SIZE", "10")

	cfg := DefaultConfig()
	cfg.Model = "flag/model"
	cfg.BatchSize = 7
	changed := map[string]bool{"model": true, "batch-size": true}

	require.NoError(t, ApplyEnvConfig(&cfg, changed))
	assert.Equal(t, "flag/model", cfg.Model)
	assert.Equal(t, 7, cfg.BatchSize)
}

func TestApplyEnvConfigInvalidNumber(t *testing.T) {
	t.Setenv("BATCH_SIZE", "lots")

	cfg := DefaultConfig()
	require.Error(t, ApplyEnvConfig(&cfg, map[string]bool{}))
}

func TestApplyEnvConfigIgnoresNonPositiveValues(t *testing.T) {
	t.Setenv("MAX_RETRIES", "0")
	t.Setenv("RETRY_DELAY", "-100")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{}))
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.RetryDelay)
}

func TestApplyEnvConfigZeroTemperature(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "0")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{}))
	assert.Equal(t, 0.0, cfg.Temperature)
}

func TestApplyEnvConfigIgnoresNegativeTemperature(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "-1")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{}))
	assert.Equal(t, DefaultConfig().Temperature, cfg.Temperature)
}
