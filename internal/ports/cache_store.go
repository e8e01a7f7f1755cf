package ports

import (
	"context"

	"github.com/satzlabs/satzgen/internal/domain"
)

// CacheStore persists per-batch results so a restarted run can skip batches
// that already completed. Cache artifacts are the only state surviving a
// crash.
type CacheStore interface {
	// Load returns the cached entries for the given batch sequence number.
	// A missing or unreadable artifact is a cache miss (ok == false), never
	// an error: corruption triggers a re-fetch, not a crash.
	Load(ctx context.Context, seq int) (entries []domain.Entry, ok bool)

	// Save durably persists the entries for the given batch sequence number.
	// The write is atomic: a crash mid-save leaves either the previous
	// artifact or the new one, never a torn file.
	Save(ctx context.Context, seq int, entries []domain.Entry) error
}

// ResultSink accumulates validated entries across batches and persists the
// cumulative list after every batch, so an interrupted run never loses more
// than the in-flight batch.
type ResultSink interface {
	// Append adds a successful batch's entries to the cumulative list.
	Append(seq int, entries []domain.Entry)

	// Flush rewrites the full cumulative list to durable storage.
	Flush(ctx context.Context) error

	// Entries returns the accumulated entries in batch order.
	Entries() []domain.Entry
}
