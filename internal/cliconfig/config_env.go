package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables, using
// the variable names the tool has always documented (OPENROUTER_API_KEY,
// SYSTEM_PROMPT, ...). It respects flags that have been explicitly set
// (changed map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("api-key", os.Getenv("OPENROUTER_API_KEY"), &cfg.APIKey)
	s.setString("model", os.Getenv("OPENROUTER_MODEL"), &cfg.Model)
	s.setString("base-url", os.Getenv("OPENROUTER_BASE_URL"), &cfg.BaseURL)
	s.setString("referer", os.Getenv("HTTP_REFERER"), &cfg.Referer)
	s.setString("system-prompt", os.Getenv("SYSTEM_PROMPT"), &cfg.SystemPrompt)
	s.setString("cache-dir", os.Getenv("TEMP_DIR"), &cfg.CacheDir)

	if err := s.setFloatFromString("temperature", os.Getenv("LLM_TEMPERATURE"), &cfg.Temperature); err != nil {
		return err
	}
	if err := s.setIntFromString("max-tokens", os.Getenv("MAX_TOKENS"), &cfg.MaxTokens); err != nil {
		return err
	}
	if err := s.setIntFromString("batch-size", os.Getenv("BATCH_SIZE"), &cfg.BatchSize); err != nil {
		return err
	}
	if err := s.setIntFromString("max-retries", os.Getenv("MAX_RETRIES"), &cfg.MaxRetries); err != nil {
		return err
	}

	// RETRY_DELAY is integer milliseconds, HTTP_TIMEOUT a Go duration.
	if err := s.setMillisFromString("retry-delay", os.Getenv("RETRY_DELAY"), &cfg.RetryDelay); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	return nil
}
