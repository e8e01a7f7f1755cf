// Package extract recovers a JSON array of raw entries from a model
// response that may be clean, fenced in a markdown code block, or buried in
// surrounding prose. Generation upstream is not contractually guaranteed to
// emit clean JSON, hence the layered fallbacks.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/satzlabs/satzgen/internal/domain"
)

// RawEntry mirrors one element of the model's output array before
// validation. Every field is optional at this stage; the validator fills in
// whatever is missing.
type RawEntry struct {
	De *RawGerman  `json:"de"`
	En *RawEnglish `json:"en"`
}

// RawGerman is the unvalidated German record.
type RawGerman struct {
	Verb           string        `json:"verb"`
	Infinitive     string        `json:"infinitive"`
	Type           string        `json:"type"`
	PastTense      string        `json:"past_tense"`
	PastParticiple string        `json:"past_participle"`
	Sentences      *RawSentences `json:"sentences"`
}

// RawEnglish is the unvalidated English record.
type RawEnglish struct {
	Verb      string        `json:"verb"`
	Sentences *RawSentences `json:"sentences"`
}

// RawSentences are the unvalidated example sentences.
type RawSentences struct {
	Present string `json:"present"`
	Past    string `json:"past"`
}

// fencedRe matches a markdown code block tagged as json whose body is an
// array.
var fencedRe = regexp.MustCompile("```json\\s*(\\[[\\s\\S]*?\\])\\s*```")

// Entries recovers the raw entry array from the response content.
// Strategies are tried in order: the whole content as an array, the body of
// a ```json fenced block, then the first balanced bracketed substring.
func Entries(content string) ([]RawEntry, error) {
	trimmed := strings.TrimSpace(content)

	if entries, err := parseArray(trimmed); err == nil {
		return entries, nil
	}

	if m := fencedRe.FindStringSubmatch(content); m != nil {
		if entries, err := parseArray(m[1]); err == nil {
			return entries, nil
		}
	}

	// Scan each '[' in turn; prose often contains bracketed asides before
	// the actual array.
	for start := 0; start < len(content); {
		i := strings.IndexByte(content[start:], '[')
		if i < 0 {
			break
		}
		i += start
		if candidate := balancedFrom(content, i); candidate != "" {
			if entries, err := parseArray(candidate); err == nil {
				return entries, nil
			}
		}
		start = i + 1
	}

	return nil, domain.ErrExtraction
}

// parseArray unmarshals s as an array of raw entries. A top-level value
// that is not an array is an error.
func parseArray(s string) ([]RawEntry, error) {
	var entries []RawEntry
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		return nil, fmt.Errorf("parse array: %w", err)
	}
	return entries, nil
}

// balancedFrom returns the substring from the '[' at start to its matching
// ']', honoring JSON string literals and escapes. Returns "" when the
// bracket never closes.
func balancedFrom(s string, start int) string {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
