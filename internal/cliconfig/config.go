// Package cliconfig assembles the immutable run configuration from
// defaults, an optional TOML file, environment variables, and command-line
// flags, in ascending precedence.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/satzlabs/satzgen/internal/domain"
)

// DefaultBaseURL is the default OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when no model is configured.
const DefaultModel = "anthropic/claude-3-sonnet"

// DefaultReferer is sent in the HTTP-Referer header.
const DefaultReferer = "https://github.com/german-verb-generator"

// Config holds the full run configuration. It is built once at startup and
// passed explicitly to every component; nothing reads the environment after
// that.
type Config struct {
	APIKey       string
	Model        string
	BaseURL      string
	Referer      string
	SystemPrompt string

	Temperature float64
	MaxTokens   int

	BatchSize   int
	MaxRetries  int
	RetryDelay  time.Duration
	HTTPTimeout time.Duration
	CacheDir    string
}

// DefaultConfig returns a Config with documented defaults. The API key and
// system prompt have no default; their absence fails validation.
func DefaultConfig() Config {
	return Config{
		Model:       DefaultModel,
		BaseURL:     DefaultBaseURL,
		Referer:     DefaultReferer,
		Temperature: 0.7,
		MaxTokens:   4000,
		BatchSize:   50,
		MaxRetries:  3,
		RetryDelay:  5 * time.Second,
		HTTPTimeout: 120 * time.Second,
		CacheDir:    ".temp",
	}
}

// Validate checks the configuration for errors and normalizes derived
// values. Missing credentials fail here, before any batch work begins.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return domain.ErrMissingAPIKey
	}
	if c.SystemPrompt == "" {
		return domain.ErrMissingSystemPrompt
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive", domain.ErrInvalidConfig)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("%w: max retries must be positive", domain.ErrInvalidConfig)
	}
	if c.RetryDelay <= 0 {
		return fmt.Errorf("%w: retry delay must be positive", domain.ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}

	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.CacheDir == "" {
		c.CacheDir = ".temp"
	}

	return nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.satzgen/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".satzgen", "config.toml")
	}
	return ""
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Logger returns the process-wide console logger.
func Logger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if present, non-negative, and flag not
// changed. The pointer distinguishes an absent value from an explicit zero.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || *value < 0 || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Used for environment variables that come as strings. Zero is a valid
// value (a deterministic sampling temperature); only negatives are ignored.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f < 0 {
		return nil
	}
	*dst = f
	return nil
}

// setMillisFromString parses a string as integer milliseconds.
// The RETRY_DELAY environment variable is documented in milliseconds.
func (s *configSetter) setMillisFromString(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	ms, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if ms <= 0 {
		return nil
	}
	*dst = time.Duration(ms) * time.Millisecond
	return nil
}
