package language

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModelJSON = `{
	"unigrams": {"le": 4, "chat": 2, "tapis": 1},
	"bigrams": {"le chat": 2, "le tapis": 1},
	"trigrams": {"le chat dort": 1},
	"vocabulary_size": 7,
	"k_smoothing": 0.5
}`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(testModelJSON))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Unigrams["le"])
	assert.Equal(t, 2, m.Bigrams[[2]string{"le", "chat"}])
	assert.Equal(t, 1, m.Trigrams[[3]string{"le", "chat", "dort"}])
	assert.Equal(t, 7, m.VocabSize)
	assert.Equal(t, 0.5, m.K)

	// (2+0.5)/(4+0.5*7) with the per-order add-k formula.
	assert.InDelta(t, 2.5/7.5, m.BigramProb("le", "chat"), 1e-12)
}

func TestLoad_RejectsBadVocabSize(t *testing.T) {
	_, err := Load(strings.NewReader(`{"unigrams": {}, "bigrams": {}, "trigrams": {}, "vocabulary_size": 0, "k_smoothing": 1}`))
	assert.Error(t, err)
}

func TestLoad_RejectsNegativeK(t *testing.T) {
	_, err := Load(strings.NewReader(`{"unigrams": {}, "bigrams": {}, "trigrams": {}, "vocabulary_size": 5, "k_smoothing": -1}`))
	assert.Error(t, err)
}

func TestLoad_RejectsBadKeyArity(t *testing.T) {
	_, err := Load(strings.NewReader(`{"unigrams": {}, "bigrams": {"only-one": 1}, "trigrams": {}, "vocabulary_size": 5, "k_smoothing": 1}`))
	assert.Error(t, err)
}

func TestBuilder_Counts(t *testing.T) {
	b := NewBuilder(1.0)
	b.AddSentence([]string{"a", "b"})
	b.AddSentence([]string{"a"})
	m := b.Model()

	assert.Equal(t, 2, m.Unigrams["a"])
	assert.Equal(t, 4, m.Unigrams[SentenceStart]) // two markers per sentence
	assert.Equal(t, 2, m.Bigrams[[2]string{SentenceStart, SentenceStart}])
	assert.Equal(t, 2, m.Trigrams[[3]string{SentenceStart, SentenceStart, "a"}])
	assert.Equal(t, 4, m.VocabSize) // distinct unigrams: <s>, a, b, </s>
}

func TestBuilder_EmptySentenceIgnored(t *testing.T) {
	b := NewBuilder(1.0)
	b.AddSentence(nil)
	assert.Empty(t, b.Model().Unigrams)
}

func TestBuilder_WriteJSONRoundTrip(t *testing.T) {
	b := NewBuilder(0.5)
	b.AddSentence([]string{"le", "chat", "dort"})
	b.AddSentence([]string{"le", "tapis"})

	var buf bytes.Buffer
	require.NoError(t, b.WriteJSON(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	built := b.Model()
	assert.Equal(t, built.VocabSize, loaded.VocabSize)
	assert.Equal(t, built.K, loaded.K)

	seq := []string{"le", "chat", "dort"}
	assert.InDelta(t, built.SentenceLogProb(seq), loaded.SentenceLogProb(seq), 1e-12)
}
