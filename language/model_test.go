package language

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func addKModel() *Model {
	return NewModel(
		map[string]int{"a": 2, "b": 1}, // total 3
		map[[2]string]int{{"a", "b"}: 1},
		map[[3]string]int{{"a", "b", "a"}: 1},
		5,   // V
		1.0, // k
	)
}

func TestUnigramProb_AddK(t *testing.T) {
	m := addKModel()
	assert.InDelta(t, 3.0/8.0, m.UnigramProb("a"), 1e-12)
	assert.InDelta(t, 1.0/8.0, m.UnigramProb("z"), 1e-12)
}

func TestBigramProb_AddK(t *testing.T) {
	m := addKModel()
	assert.InDelta(t, 2.0/7.0, m.BigramProb("a", "b"), 1e-12)
	assert.InDelta(t, 1.0/6.0, m.BigramProb("b", "a"), 1e-12)
}

func TestTrigramProb_AddK(t *testing.T) {
	m := addKModel()
	// (count(a,b,a)+k) / (count(a,b)+k*V) = 2/6
	assert.InDelta(t, 1.0/3.0, m.TrigramProb("a", "b", "a"), 1e-12)
}

func TestWordLogProb_BackoffChain(t *testing.T) {
	m := addKModel()

	// Bigram context (a,b) observed: trigram estimate.
	assert.InDelta(t, math.Log(1.0/3.0), m.WordLogProb("a", "b", "a"), 1e-12)

	// Context (b,a) unseen but a observed: bigram estimate P(x|a).
	assert.InDelta(t, math.Log(1.0/7.0), m.WordLogProb("b", "a", "x"), 1e-12)

	// Both context words unseen but target observed: unigram estimate.
	assert.InDelta(t, math.Log(3.0/8.0), m.WordLogProb("x", "y", "a"), 1e-12)

	// Nothing observed: fixed floor, never a failure.
	assert.InDelta(t, math.Log(1e-10), m.WordLogProb("x", "y", "z"), 1e-12)
}

func TestSentenceLogProb(t *testing.T) {
	b := NewBuilder(0.5)
	b.AddSentence([]string{"a", "b", "a"})
	m := b.Model()

	// All four trigram contexts are observed with count 1 and each estimate
	// is (1+0.5)/(1+0.5*4) = 0.5.
	want := 4 * math.Log(0.5)
	assert.InDelta(t, want, m.SentenceLogProb([]string{"a", "b", "a"}), 1e-12)
}

func TestSentenceLogProb_Empty(t *testing.T) {
	m := addKModel()
	assert.Equal(t, 0.0, m.SentenceLogProb(nil))
}

func TestSentenceLogProb_Deterministic(t *testing.T) {
	b := NewBuilder(0.1)
	b.AddSentence([]string{"le", "chat", "est", "sur", "le", "tapis"})
	m := b.Model()

	first := m.SentenceLogProb([]string{"le", "chat", "dort"})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.SentenceLogProb([]string{"le", "chat", "dort"}))
	}
}

func TestVocab(t *testing.T) {
	m := addKModel()
	assert.ElementsMatch(t, []string{"a", "b"}, m.Vocab())
}
