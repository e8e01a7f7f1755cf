package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
api_key = "file-key"
model = "file/model"
system_prompt = "file prompt"
batch_size = 25
max_retries = 4
retry_delay = "3s"
http_timeout = "60s"
temperature = 0.5
max_tokens = 1000
cache_dir = "cachedir"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAndApplyFileConfig(t *testing.T) {
	fc, err := LoadFileConfig(writeConfig(t, sampleTOML))
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{}))

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "file/model", cfg.Model)
	assert.Equal(t, "file prompt", cfg.SystemPrompt)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.Equal(t, 4, cfg.MaxRetries)
	assert.Equal(t, 3*time.Second, cfg.RetryDelay)
	assert.Equal(t, 60*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 0.5, cfg.Temperature)
	assert.Equal(t, 1000, cfg.MaxTokens)
	assert.Equal(t, "cachedir", cfg.CacheDir)
}

func TestApplyFileConfigRespectsChangedFlags(t *testing.T) {
	fc := FileConfig{Model: "file/model", BatchSize: 25}

	cfg := DefaultConfig()
	cfg.Model = "flag/model"
	changed := map[string]bool{"model": true}

	require.NoError(t, ApplyFileConfig(&cfg, fc, changed))
	assert.Equal(t, "flag/model", cfg.Model)
	assert.Equal(t, 25, cfg.BatchSize)
}

func TestApplyFileConfigZeroTemperature(t *testing.T) {
	fc, err := LoadFileConfig(writeConfig(t, "temperature = 0.0\n"))
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{}))
	assert.Equal(t, 0.0, cfg.Temperature)
}

func TestApplyFileConfigAbsentTemperatureKeepsDefault(t *testing.T) {
	fc, err := LoadFileConfig(writeConfig(t, "model = \"file/model\"\n"))
	require.NoError(t, err)

	cfg := DefaultConfig()
	require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{}))
	assert.Equal(t, DefaultConfig().Temperature, cfg.Temperature)
}

func TestApplyFileConfigBadDuration(t *testing.T) {
	fc := FileConfig{RetryDelay: "soon"}

	cfg := DefaultConfig()
	require.Error(t, ApplyFileConfig(&cfg, fc, map[string]bool{}))
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	_, err := LoadFileConfig(writeConfig(t, "model = [broken"))
	require.Error(t, err)
}
