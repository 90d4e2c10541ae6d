// Package sample ships a small built-in English-to-French system: a phrase
// table, a trigram language model, a word dictionary, and a parallel corpus.
// It exists so the decoder and scorer can be exercised end to end without any
// model files on disk. Every constructor returns fresh values, so callers may
// mutate what they get.
package sample

import (
	"github.com/ieee0824/mteval-go/dictionary"
	"github.com/ieee0824/mteval-go/language"
	"github.com/ieee0824/mteval-go/phrase"
	"github.com/ieee0824/mteval-go/tokenize"
)

// Pair is one sentence of the parallel corpus.
type Pair struct {
	Source    string
	Reference string
}

// Table returns the built-in English-to-French phrase table.
func Table() *phrase.Table {
	t := phrase.New()
	for src, cands := range map[string][]phrase.Candidate{
		"the":            {{Phrase: "le", Prob: 0.5}, {Phrase: "la", Prob: 0.4}},
		"cat":            {{Phrase: "chat", Prob: 0.9}},
		"dog":            {{Phrase: "chien", Prob: 0.9}},
		"the cat":        {{Phrase: "le chat", Prob: 0.85}},
		"the dog":        {{Phrase: "le chien", Prob: 0.85}},
		"is":             {{Phrase: "est", Prob: 0.8}},
		"on":             {{Phrase: "sur", Prob: 0.8}},
		"on the":         {{Phrase: "sur le", Prob: 0.6}, {Phrase: "sur la", Prob: 0.3}},
		"mat":            {{Phrase: "tapis", Prob: 0.8}},
		"table":          {{Phrase: "table", Prob: 0.8}},
		"house":          {{Phrase: "maison", Prob: 0.9}},
		"in":             {{Phrase: "dans", Prob: 0.8}},
		"in the":         {{Phrase: "dans la", Prob: 0.55}, {Phrase: "dans le", Prob: 0.35}},
		"small":          {{Phrase: "petit", Prob: 0.7}, {Phrase: "petite", Prob: 0.25}},
		"big":            {{Phrase: "grand", Prob: 0.7}, {Phrase: "grande", Prob: 0.25}},
		"eats":           {{Phrase: "mange", Prob: 0.85}},
		"sleeps":         {{Phrase: "dort", Prob: 0.85}},
		"hello":          {{Phrase: "bonjour", Prob: 0.95}},
		"good morning":   {{Phrase: "bonjour", Prob: 0.9}},
		"thank you":      {{Phrase: "merci", Prob: 0.95}},
		"thank you very": {{Phrase: "merci beaucoup", Prob: 0.6}},
		"very":           {{Phrase: "tres", Prob: 0.8}},
		"very much":      {{Phrase: "beaucoup", Prob: 0.7}},
		"i":              {{Phrase: "je", Prob: 0.9}},
		"see":            {{Phrase: "vois", Prob: 0.7}},
		"i see":          {{Phrase: "je vois", Prob: 0.8}},
		"a":              {{Phrase: "un", Prob: 0.5}, {Phrase: "une", Prob: 0.4}},
	} {
		for _, c := range cands {
			t.Add(src, c.Phrase, c.Prob)
		}
	}
	return t
}

// corpus holds the French side used to train the sample language model and
// the parallel pairs the evaluation demo scores.
var pairs = []Pair{
	{Source: "the cat is on the mat", Reference: "le chat est sur le tapis"},
	{Source: "the dog sleeps in the house", Reference: "le chien dort dans la maison"},
	{Source: "the cat eats", Reference: "le chat mange"},
	{Source: "the small cat sleeps", Reference: "le petit chat dort"},
	{Source: "the dog is on the table", Reference: "le chien est sur la table"},
	{Source: "hello", Reference: "bonjour"},
	{Source: "thank you very much", Reference: "merci beaucoup"},
	{Source: "i see the big dog", Reference: "je vois le grand chien"},
}

var extraFrench = [][]string{
	{"le", "chat", "dort", "sur", "le", "tapis"},
	{"la", "maison", "est", "grande"},
	{"le", "petit", "chien", "mange"},
	{"je", "vois", "le", "chat"},
	{"le", "chat", "est", "dans", "la", "maison"},
	{"bonjour", "merci"},
}

// LanguageModel returns a trigram model trained on the French side of the
// built-in corpus with add-k smoothing.
func LanguageModel() *language.Model {
	b := language.NewBuilder(0.5)
	for _, p := range pairs {
		b.AddSentence(tokenize.Tokenize(p.Reference))
	}
	for _, s := range extraFrench {
		b.AddSentence(s)
	}
	return b.Model()
}

// Dict returns the built-in word-for-word dictionary used by the baseline
// translator.
func Dict() *dictionary.Dictionary {
	d := dictionary.New()
	for word, translations := range map[string][]string{
		"the":   {"le", "la"},
		"cat":   {"chat"},
		"dog":   {"chien"},
		"is":    {"est"},
		"on":    {"sur"},
		"in":    {"dans"},
		"mat":   {"tapis"},
		"table": {"table"},
		"house": {"maison"},
		"small": {"petit"},
		"big":   {"grand"},
		"eats":  {"mange"},
		"sleeps": {"dort"},
		"hello": {"bonjour"},
		"thank": {"merci"},
		"you":   {""},
		"very":  {"tres"},
		"much":  {"beaucoup"},
		"i":     {"je"},
		"see":   {"vois"},
		"a":     {"un", "une"},
	} {
		for _, tr := range translations {
			d.Add(word, tr)
		}
	}
	return d
}

// Corpus returns the built-in parallel sentence pairs.
func Corpus() []Pair {
	out := make([]Pair, len(pairs))
	copy(out, pairs)
	return out
}
