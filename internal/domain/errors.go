package domain

import "errors"

// Domain errors represent error conditions in the satzgen domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrMissingAPIKey is returned when no API key is configured.
	// This is fatal before any batch work begins.
	ErrMissingAPIKey = errors.New("satzgen: api key is not set")

	// ErrMissingSystemPrompt is returned when no system prompt is configured.
	// This is fatal before any batch work begins.
	ErrMissingSystemPrompt = errors.New("satzgen: system prompt is not set")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("satzgen: invalid configuration")

	// ErrNoInput is returned when the input file yields no usable verb pairs.
	ErrNoInput = errors.New("satzgen: no verb pairs found in input")

	// ErrBadTemplate is returned when the prompt template cannot be read or
	// does not contain the verb-list placeholder.
	ErrBadTemplate = errors.New("satzgen: invalid prompt template")

	// ErrExtraction is returned when no JSON array can be recovered from a
	// model response.
	ErrExtraction = errors.New("satzgen: could not extract a JSON array from response")
)
