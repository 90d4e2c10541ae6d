// Package phrase implements the static phrase translation table used by the
// toy phrase-based decoder.
package phrase

import (
	"strings"

	"github.com/pkg/errors"
)

// FallbackProb is the probability assigned to the identity fallback when a
// source phrase has no table entry.
const FallbackProb = 0.01

// Candidate is one target-language option for a source phrase.
type Candidate struct {
	Phrase string  `json:"phrase"`
	Prob   float64 `json:"prob"`
}

// Table maps lowercase source phrases to ranked target candidates. Immutable
// after construction; safe for concurrent readers.
type Table struct {
	entries map[string][]Candidate
	maxLen  int // longest source phrase, in tokens
}

// New creates an empty phrase table.
func New() *Table {
	return &Table{entries: make(map[string][]Candidate)}
}

// Add appends a candidate translation for a source phrase. Probabilities must
// be in (0, 1]: they are used inside log() during decoding.
func (t *Table) Add(source, target string, prob float64) error {
	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		return errors.New("phrase: empty source phrase")
	}
	if prob <= 0 || prob > 1 {
		return errors.Errorf("phrase: probability %g for %q outside (0,1]", prob, source)
	}
	t.entries[source] = append(t.entries[source], Candidate{Phrase: target, Prob: prob})
	if n := len(strings.Fields(source)); n > t.maxLen {
		t.maxLen = n
	}
	return nil
}

// Lookup returns the candidate translations for a source phrase in stored
// order, or nil when the phrase is unknown. Lookup is case-insensitive.
func (t *Table) Lookup(source string) []Candidate {
	return t.entries[strings.ToLower(source)]
}

// Best returns the maximum-probability candidate for a source phrase, ties
// kept in stored order. Unknown phrases fall back to the identity translation
// so that every source span can always be covered.
func (t *Table) Best(source string) Candidate {
	cands := t.Lookup(source)
	if len(cands) == 0 {
		return Candidate{Phrase: strings.ToLower(source), Prob: FallbackProb}
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Prob > best.Prob {
			best = c
		}
	}
	return best
}

// MaxPhraseLen returns the token length of the longest source phrase in the
// table.
func (t *Table) MaxPhraseLen() int {
	return t.maxLen
}

// Len returns the number of distinct source phrases.
func (t *Table) Len() int {
	return len(t.entries)
}
