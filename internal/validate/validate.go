// Package validate normalizes raw model output into fully-populated
// entries and reports which requested verbs the model skipped.
package validate

import (
	"fmt"

	"github.com/satzlabs/satzgen/internal/domain"
	"github.com/satzlabs/satzgen/internal/extract"
)

// Entry normalizes one raw entry. Returns ok == false when the entry lacks
// both language records and must be dropped; otherwise every field of the
// result is populated, substituting a templated sentence for missing
// sentence fields and an empty string elsewhere.
func Entry(raw extract.RawEntry) (domain.Entry, bool) {
	if raw.De == nil && raw.En == nil {
		return domain.Entry{}, false
	}

	de := raw.De
	if de == nil {
		de = &extract.RawGerman{}
	}
	en := raw.En
	if en == nil {
		en = &extract.RawEnglish{}
	}

	entry := domain.Entry{
		De: domain.GermanRecord{
			Verb:           de.Verb,
			Infinitive:     orDefault(de.Infinitive, de.Verb),
			Type:           orDefault(de.Type, "unknown"),
			PastTense:      de.PastTense,
			PastParticiple: de.PastParticiple,
			Sentences:      germanSentences(de),
		},
		En: domain.EnglishRecord{
			Verb:      en.Verb,
			Sentences: englishSentences(en),
		},
	}

	return entry, true
}

// Batch normalizes all raw entries of one batch. It returns the validated
// entries in response order and the requested German verbs that appear in
// no validated entry. Missing verbs are a completeness signal, not an
// error; the run proceeds regardless.
func Batch(raws []extract.RawEntry, batch domain.Batch) (entries []domain.Entry, missing []string) {
	seen := make(map[string]struct{}, len(raws))
	entries = make([]domain.Entry, 0, len(raws))

	for _, raw := range raws {
		entry, ok := Entry(raw)
		if !ok {
			continue
		}
		entries = append(entries, entry)
		seen[entry.De.Verb] = struct{}{}
	}

	for _, p := range batch.Pairs {
		if _, ok := seen[p.German]; !ok {
			missing = append(missing, p.German)
		}
	}

	return entries, missing
}

// germanSentences fills the German example sentences, falling back to a
// minimal templated sentence built from the verb.
func germanSentences(de *extract.RawGerman) domain.SentencePair {
	var s extract.RawSentences
	if de.Sentences != nil {
		s = *de.Sentences
	}
	return domain.SentencePair{
		Present: orDefault(s.Present, fmt.Sprintf("Ich %s.", de.Verb)),
		Past:    orDefault(s.Past, fmt.Sprintf("Ich habe %s.", de.Verb)),
	}
}

// englishSentences fills the English example sentences. There is no usable
// template on the English side, so absent fields stay empty.
func englishSentences(en *extract.RawEnglish) domain.SentencePair {
	if en.Sentences == nil {
		return domain.SentencePair{}
	}
	return domain.SentencePair{
		Present: en.Sentences.Present,
		Past:    en.Sentences.Past,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
