package cliconfig

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	APIKey       string   `toml:"api_key"`
	Model        string   `toml:"model"`
	BaseURL      string   `toml:"base_url"`
	Referer      string   `toml:"referer"`
	SystemPrompt string   `toml:"system_prompt"`
	Temperature  *float64 `toml:"temperature"`
	MaxTokens    int      `toml:"max_tokens"`
	BatchSize    int      `toml:"batch_size"`
	MaxRetries   int      `toml:"max_retries"`
	RetryDelay   string   `toml:"retry_delay"`
	HTTPTimeout  string   `toml:"http_timeout"`
	CacheDir     string   `toml:"cache_dir"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("api-key", fc.APIKey, &cfg.APIKey)
	s.setString("model", fc.Model, &cfg.Model)
	s.setString("base-url", fc.BaseURL, &cfg.BaseURL)
	s.setString("referer", fc.Referer, &cfg.Referer)
	s.setString("system-prompt", fc.SystemPrompt, &cfg.SystemPrompt)
	s.setString("cache-dir", fc.CacheDir, &cfg.CacheDir)

	s.setFloat("temperature", fc.Temperature, &cfg.Temperature)
	s.setInt("max-tokens", fc.MaxTokens, &cfg.MaxTokens)
	s.setInt("batch-size", fc.BatchSize, &cfg.BatchSize)
	s.setInt("max-retries", fc.MaxRetries, &cfg.MaxRetries)

	if err := s.setDuration("retry-delay", fc.RetryDelay, &cfg.RetryDelay); err != nil {
		return err
	}
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	return nil
}
