// Package language implements a trigram language model with add-k smoothing
// and explicit backoff, scored entirely in log space.
package language

import (
	"math"

	"github.com/ieee0824/mteval-go/internal/mathutil"
)

// Sentence boundary markers padded onto every scored sequence.
const (
	SentenceStart = "<s>"
	SentenceEnd   = "</s>"
)

// unseenProb is the floor applied when even the unigram estimate is unusable.
const unseenProb = 1e-10

// Model is a static trigram model: per-order count maps, a vocabulary size V
// fixed at load time, and the add-k smoothing constant. Immutable after
// construction; safe for concurrent readers.
type Model struct {
	Unigrams map[string]int
	Bigrams  map[[2]string]int
	Trigrams map[[3]string]int

	VocabSize int     // V in the add-k formula; > 0
	K         float64 // smoothing constant; >= 0

	totalUnigrams int
}

// NewModel builds a model from per-order counts. The unigram total used by
// the unigram estimate is computed once here.
func NewModel(unigrams map[string]int, bigrams map[[2]string]int, trigrams map[[3]string]int, vocabSize int, k float64) *Model {
	m := &Model{
		Unigrams:  unigrams,
		Bigrams:   bigrams,
		Trigrams:  trigrams,
		VocabSize: vocabSize,
		K:         k,
	}
	for _, c := range unigrams {
		m.totalUnigrams += c
	}
	return m
}

// TrigramProb returns the add-k estimate
// P(w3|w1,w2) = (count(w1,w2,w3)+k) / (count(w1,w2)+k*V).
func (m *Model) TrigramProb(w1, w2, w3 string) float64 {
	num := float64(m.Trigrams[[3]string{w1, w2, w3}]) + m.K
	den := float64(m.Bigrams[[2]string{w1, w2}]) + m.K*float64(m.VocabSize)
	if den == 0 {
		return 0
	}
	return num / den
}

// BigramProb returns the add-k estimate
// P(w2|w1) = (count(w1,w2)+k) / (count(w1)+k*V).
func (m *Model) BigramProb(w1, w2 string) float64 {
	num := float64(m.Bigrams[[2]string{w1, w2}]) + m.K
	den := float64(m.Unigrams[w1]) + m.K*float64(m.VocabSize)
	if den == 0 {
		return 0
	}
	return num / den
}

// UnigramProb returns the add-k estimate P(w) = (count(w)+k) / (N+k*V).
func (m *Model) UnigramProb(w string) float64 {
	num := float64(m.Unigrams[w]) + m.K
	den := float64(m.totalUnigrams) + m.K*float64(m.VocabSize)
	if den == 0 {
		return 0
	}
	return num / den
}

// WordLogProb returns log P(w3|w1,w2) with explicit backoff: the trigram
// estimate when its bigram context was observed, else the bigram estimate
// when w2 was observed, else the unigram estimate, else a fixed floor.
func (m *Model) WordLogProb(w1, w2, w3 string) float64 {
	if m.Bigrams[[2]string{w1, w2}] > 0 {
		return mathutil.SafeLog(m.TrigramProb(w1, w2, w3), unseenProb)
	}
	if m.Unigrams[w2] > 0 {
		return mathutil.SafeLog(m.BigramProb(w2, w3), unseenProb)
	}
	if m.Unigrams[w3] > 0 {
		return mathutil.SafeLog(m.UnigramProb(w3), unseenProb)
	}
	return math.Log(unseenProb)
}

// SentenceLogProb scores a token sequence, padding it with two start markers
// and one end marker so every position has a trigram context. Accumulation is
// in log space; an empty sequence scores 0.
func (m *Model) SentenceLogProb(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	padded := make([]string, 0, len(tokens)+3)
	padded = append(padded, SentenceStart, SentenceStart)
	padded = append(padded, tokens...)
	padded = append(padded, SentenceEnd)

	logProb := 0.0
	for i := 2; i < len(padded); i++ {
		logProb += m.WordLogProb(padded[i-2], padded[i-1], padded[i])
	}
	return logProb
}

// Vocab returns the observed unigram vocabulary.
func (m *Model) Vocab() []string {
	words := make([]string, 0, len(m.Unigrams))
	for w := range m.Unigrams {
		words = append(words, w)
	}
	return words
}
