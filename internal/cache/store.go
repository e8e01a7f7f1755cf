// Package cache persists one JSON artifact per completed batch so a
// restarted run resumes without repeating remote calls.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/satzlabs/satzgen/internal/domain"
)

// FileStore implements ports.CacheStore using one JSON file per batch.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at the given directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load retrieves the cached entries for the given batch sequence number.
// A missing artifact or one that fails to parse is reported as a miss so
// the batch is re-fetched; corruption is never fatal.
func (s *FileStore) Load(ctx context.Context, seq int) ([]domain.Entry, bool) {
	data, err := os.ReadFile(s.Path(seq))
	if err != nil {
		return nil, false
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}

	return entries, true
}

// Save persists the entries for the given batch sequence number.
// Uses atomic write (write to temp file, then rename) so a crash mid-save
// leaves either a valid artifact or none, never a torn one.
func (s *FileStore) Save(ctx context.Context, seq int, entries []domain.Entry) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal batch %d: %w", seq, err)
	}

	path := s.Path(seq)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write batch %d: %w", seq, err)
	}

	return os.Rename(tmp, path)
}

// Path returns the full path of the artifact for the given sequence number.
func (s *FileStore) Path(seq int) string {
	return filepath.Join(s.dir, fmt.Sprintf("batch_%d.json", seq))
}

// Clear removes the cache directory and every artifact in it.
// Called only after a fully successful run.
func (s *FileStore) Clear() error {
	return os.RemoveAll(s.dir)
}
