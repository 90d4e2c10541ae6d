// Package dictionary implements the word-by-word baseline translator: a
// bilingual dictionary lookup with no reordering and no context. It exists to
// show what phrase-based decoding improves on.
package dictionary

import (
	"strings"

	"github.com/ieee0824/mteval-go/tokenize"
)

// Dictionary maps lowercase source words to their translations, most common
// first. Immutable after loading; safe for concurrent readers.
type Dictionary struct {
	entries map[string][]string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]string)}
}

// Add appends a translation for a source word.
func (d *Dictionary) Add(source, target string) {
	source = strings.ToLower(source)
	d.entries[source] = append(d.entries[source], target)
}

// Translations returns all translations for a word, or nil when unknown.
func (d *Dictionary) Translations(word string) []string {
	return d.entries[strings.ToLower(word)]
}

// TranslateWord translates a single word: the first-listed translation, or
// the word itself when unknown (proper nouns pass through). A first-listed
// empty translation means the word has no target-language counterpart and is
// dropped by Translate.
func (d *Dictionary) TranslateWord(word string) string {
	if translations := d.Translations(word); len(translations) > 0 {
		return translations[0]
	}
	return strings.ToLower(word)
}

// Translate performs word-by-word translation of a sentence, keeping source
// order. Empty input returns an empty string.
func (d *Dictionary) Translate(sentence string) string {
	var out []string
	for _, word := range tokenize.Clean(sentence) {
		if t := d.TranslateWord(word); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

// Len returns the number of source words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
