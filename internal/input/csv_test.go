package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satzlabs/satzgen/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verbs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadPairsSkipsHeaderAndTrims(t *testing.T) {
	path := writeCSV(t, "German,English\n gehen , to go \nlaufen,to run\n")

	pairs, err := ReadPairs(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.VerbPair{
		{German: "gehen", English: "to go"},
		{German: "laufen", English: "to run"},
	}, pairs)
}

func TestReadPairsSkipsIncompleteRows(t *testing.T) {
	path := writeCSV(t, "German,English\ngehen,to go\nonlyone\n,to run\nlaufen,\nsehen,to see\n")

	pairs, err := ReadPairs(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.VerbPair{
		{German: "gehen", English: "to go"},
		{German: "sehen", English: "to see"},
	}, pairs)
}

func TestReadPairsIgnoresExtraColumns(t *testing.T) {
	path := writeCSV(t, "German,English,Level\ngehen,to go,A1\n")

	pairs, err := ReadPairs(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.VerbPair{{German: "gehen", English: "to go"}}, pairs)
}

func TestReadPairsEmptyInputIsError(t *testing.T) {
	path := writeCSV(t, "German,English\n")

	_, err := ReadPairs(path)
	require.ErrorIs(t, err, domain.ErrNoInput)
}

func TestReadPairsMissingFile(t *testing.T) {
	_, err := ReadPairs(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
