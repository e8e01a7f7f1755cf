// Package tts renders generated entries as narration text ready for a
// text-to-speech engine, with commas and periods inserted as pauses.
package tts

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/satzlabs/satzgen/internal/domain"
)

// Script formats entries for narration, one paragraph per verb separated by
// blank lines.
func Script(entries []domain.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, entryText(e))
	}
	return strings.Join(parts, "\n\n")
}

// ScriptFromFile loads a generated entries file and renders it.
func ScriptFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read entries: %w", err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("parse entries: %w", err)
	}

	return Script(entries), nil
}

// entryText builds one narration paragraph: verb and translation, the tense
// forms, then the example sentences.
func entryText(e domain.Entry) string {
	segments := []string{
		fmt.Sprintf("%s, %s.", e.De.Verb, e.En.Verb),
		fmt.Sprintf("%s, %s.", e.De.PastTense, e.De.PastParticiple),
	}

	for _, s := range []string{e.De.Sentences.Present, e.De.Sentences.Past} {
		if t := withTerminalPause(s); t != "" {
			segments = append(segments, t)
		}
	}

	return strings.Join(segments, " ")
}

// withTerminalPause ensures a sentence ends with pause punctuation so the
// TTS engine breathes between sentences.
func withTerminalPause(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
