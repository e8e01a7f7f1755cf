// Package batch splits the ordered input list into fixed-size contiguous
// batches for sequential processing.
package batch

import (
	"fmt"

	"github.com/satzlabs/satzgen/internal/domain"
)

// Split partitions pairs into ordered batches of at most size pairs each.
// Sequence numbers are 1-based. Every pair appears exactly once, in original
// order; the last batch may be shorter. A non-positive size is an error.
func Split(pairs []domain.VerbPair, size int) ([]domain.Batch, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", domain.ErrInvalidConfig, size)
	}

	batches := make([]domain.Batch, 0, (len(pairs)+size-1)/size)
	for start := 0; start < len(pairs); start += size {
		end := start + size
		if end > len(pairs) {
			end = len(pairs)
		}
		batches = append(batches, domain.Batch{
			Seq:   len(batches) + 1,
			Pairs: pairs[start:end],
		})
	}
	return batches, nil
}
