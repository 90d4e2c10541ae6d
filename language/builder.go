package language

import (
	"encoding/json"
	"io"
	"strings"
)

// Builder accumulates n-gram counts from tokenized sentences. It collects
// counts only; all probability estimation stays in Model at query time.
type Builder struct {
	k        float64
	unigrams map[string]int
	bigrams  map[[2]string]int
	trigrams map[[3]string]int
}

// NewBuilder creates a builder whose emitted models use smoothing constant k.
func NewBuilder(k float64) *Builder {
	if k < 0 {
		k = 0
	}
	return &Builder{
		k:        k,
		unigrams: make(map[string]int),
		bigrams:  make(map[[2]string]int),
		trigrams: make(map[[3]string]int),
	}
}

// AddSentence counts the n-grams of one tokenized sentence. Two start markers
// and one end marker are added so the counts line up with the trigram padding
// used at scoring time.
func (b *Builder) AddSentence(words []string) {
	if len(words) == 0 {
		return
	}
	seq := make([]string, 0, len(words)+3)
	seq = append(seq, SentenceStart, SentenceStart)
	seq = append(seq, words...)
	seq = append(seq, SentenceEnd)

	for i := range seq {
		b.unigrams[seq[i]]++
		if i >= 1 {
			b.bigrams[[2]string{seq[i-1], seq[i]}]++
		}
		if i >= 2 {
			b.trigrams[[3]string{seq[i-2], seq[i-1], seq[i]}]++
		}
	}
}

// Model builds an immutable Model from the accumulated counts. The vocabulary
// size is the number of distinct unigrams, markers included, fixed here.
func (b *Builder) Model() *Model {
	unigrams := make(map[string]int, len(b.unigrams))
	for k, v := range b.unigrams {
		unigrams[k] = v
	}
	bigrams := make(map[[2]string]int, len(b.bigrams))
	for k, v := range b.bigrams {
		bigrams[k] = v
	}
	trigrams := make(map[[3]string]int, len(b.trigrams))
	for k, v := range b.trigrams {
		trigrams[k] = v
	}
	return NewModel(unigrams, bigrams, trigrams, len(unigrams), b.k)
}

// WriteJSON writes the accumulated counts as the JSON model resource read by
// Load.
func (b *Builder) WriteJSON(w io.Writer) error {
	res := resource{
		Unigrams:       b.unigrams,
		Bigrams:        make(map[string]int, len(b.bigrams)),
		Trigrams:       make(map[string]int, len(b.trigrams)),
		VocabularySize: len(b.unigrams),
		KSmoothing:     b.k,
	}
	for key, count := range b.bigrams {
		res.Bigrams[key[0]+" "+key[1]] = count
	}
	for key, count := range b.trigrams {
		res.Trigrams[strings.Join([]string{key[0], key[1], key[2]}, " ")] = count
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
