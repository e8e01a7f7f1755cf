// Package sink accumulates validated entries across batches and rewrites
// the output file after every batch, so an interrupted run keeps everything
// generated so far.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/satzlabs/satzgen/internal/domain"
)

// FileSink implements ports.ResultSink as a single JSON array file.
// The file is rewritten in full (not appended) on every Flush, with an
// atomic rename so readers never observe a torn write.
type FileSink struct {
	path    string
	entries []domain.Entry
}

// NewFileSink creates a FileSink writing to the given path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Append adds a successful batch's entries to the cumulative list.
// Batches arrive in sequence order, so plain append preserves input order.
func (s *FileSink) Append(seq int, entries []domain.Entry) {
	s.entries = append(s.entries, entries...)
}

// Entries returns the accumulated entries in batch order.
func (s *FileSink) Entries() []domain.Entry {
	return s.entries
}

// Flush rewrites the full cumulative list to the output file.
// Umlauts and other non-ASCII characters are written directly rather than
// as \uXXXX escapes.
func (s *FileSink) Flush(ctx context.Context) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	entries := s.entries
	if entries == nil {
		entries = []domain.Entry{}
	}
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return os.Rename(tmp, s.path)
}
