package ports

import (
	"context"
	"net/http"
)

// Completer performs exactly one text-generation round trip.
// Implementations handle serialization, HTTP communication, and
// authentication. Retry logic lives in the scheduler, never here.
type Completer interface {
	// Complete sends the prompt and returns the raw message content of the
	// first choice. A non-2xx status or a network-level failure is an error.
	Complete(ctx context.Context, prompt string) (string, error)
}

// HTTPClient abstracts http.Client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
