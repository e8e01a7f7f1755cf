package domain

// Entry is the fully validated output for one verb. Every field is always
// present in serialized form; validation substitutes defaults for anything
// the model omitted.
type Entry struct {
	De GermanRecord  `json:"de"`
	En EnglishRecord `json:"en"`
}

// GermanRecord holds the German half of an entry.
type GermanRecord struct {
	Verb           string       `json:"verb"`
	Infinitive     string       `json:"infinitive"`
	Type           string       `json:"type"`
	PastTense      string       `json:"past_tense"`
	PastParticiple string       `json:"past_participle"`
	Sentences      SentencePair `json:"sentences"`
}

// EnglishRecord holds the English half of an entry.
type EnglishRecord struct {
	Verb      string       `json:"verb"`
	Sentences SentencePair `json:"sentences"`
}

// SentencePair holds one example sentence per covered tense.
type SentencePair struct {
	Present string `json:"present"`
	Past    string `json:"past"`
}
