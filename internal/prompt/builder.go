// Package prompt renders a batch of verb pairs into an outbound prompt
// using a user-supplied template file.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/satzlabs/satzgen/internal/domain"
)

// Placeholder is the token in the template that gets replaced by the
// formatted verb list.
const Placeholder = "{{VERB_LIST}}"

// Builder renders batches against a template loaded once at startup.
type Builder struct {
	template string
}

// NewBuilder reads the template file and validates it. A template that
// cannot be read or that lacks the placeholder is rejected up front, before
// any batch work begins.
func NewBuilder(path string) (*Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrBadTemplate, path, err)
	}

	template := string(data)
	if !strings.Contains(template, Placeholder) {
		return nil, fmt.Errorf("%w: %s does not contain %s", domain.ErrBadTemplate, path, Placeholder)
	}

	return &Builder{template: template}, nil
}

// Render returns the template with the placeholder replaced by one
// "german (english)" line per pair, in batch order.
func (b *Builder) Render(batch domain.Batch) string {
	lines := make([]string, len(batch.Pairs))
	for i, p := range batch.Pairs {
		lines[i] = fmt.Sprintf("- %s (%s)", p.German, p.English)
	}
	return strings.Replace(b.template, Placeholder, strings.Join(lines, "\n"), 1)
}
