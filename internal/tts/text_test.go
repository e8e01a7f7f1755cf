package tts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satzlabs/satzgen/internal/domain"
)

func fullEntry() domain.Entry {
	return domain.Entry{
		De: domain.GermanRecord{
			Verb:           "gehen",
			PastTense:      "ging",
			PastParticiple: "gegangen",
			Sentences: domain.SentencePair{
				Present: "Ich gehe nach Hause.",
				Past:    "Ich ging nach Hause",
			},
		},
		En: domain.EnglishRecord{Verb: "to go"},
	}
}

func TestScriptFormatsEntry(t *testing.T) {
	got := Script([]domain.Entry{fullEntry()})

	assert.Equal(t, "gehen, to go. ging, gegangen. Ich gehe nach Hause. Ich ging nach Hause.", got)
}

func TestScriptSeparatesEntriesWithBlankLines(t *testing.T) {
	got := Script([]domain.Entry{fullEntry(), fullEntry()})
	assert.Contains(t, got, "\n\n")
}

func TestScriptOmitsEmptySentences(t *testing.T) {
	e := fullEntry()
	e.De.Sentences = domain.SentencePair{}

	got := Script([]domain.Entry{e})
	assert.Equal(t, "gehen, to go. ging, gegangen.", got)
}

func TestScriptKeepsExistingPunctuation(t *testing.T) {
	e := fullEntry()
	e.De.Sentences.Present = "Gehst du nach Hause?"
	e.De.Sentences.Past = ""

	got := Script([]domain.Entry{e})
	assert.Equal(t, "gehen, to go. ging, gegangen. Gehst du nach Hause?", got)
}

func TestScriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"de":{"verb":"gehen","past_tense":"ging","past_participle":"gegangen","sentences":{"present":"","past":""}},"en":{"verb":"to go","sentences":{"present":"","past":""}}}]`), 0o600))

	got, err := ScriptFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gehen, to go. ging, gegangen.", got)
}

func TestScriptFromFileRejectsNonArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"de": {}}`), 0o600))

	_, err := ScriptFromFile(path)
	require.Error(t, err)
}
