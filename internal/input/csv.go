// Package input reads verb pairs from a delimited input file.
package input

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/satzlabs/satzgen/internal/domain"
)

// ReadPairs reads verb pairs from a CSV file with a header row and at least
// two columns (German, English). Rows with fewer than two columns or with
// an empty verb on either side are skipped. An input that yields no usable
// pairs is an error.
func ReadPairs(path string) ([]domain.VerbPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input csv: %w", err)
	}

	var pairs []domain.VerbPair
	for i, row := range rows {
		if i == 0 {
			// Header row
			continue
		}
		if len(row) < 2 {
			continue
		}
		german := strings.TrimSpace(row[0])
		english := strings.TrimSpace(row[1])
		if german == "" || english == "" {
			continue
		}
		pairs = append(pairs, domain.VerbPair{German: german, English: english})
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: %s needs a header and at least two columns (German, English)", domain.ErrNoInput, path)
	}

	return pairs, nil
}
