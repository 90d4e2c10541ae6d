package tokenize

import "strings"

// devanagariPunct is the punctuation separated out by the Devanagari
// tokenizer. The danda (।) and double danda (॥) are the Devanagari sentence
// terminators.
const devanagariPunct = "।॥,.:;!?()[]{}\"'-"

// IsDevanagari reports whether r is in the Devanagari Unicode block.
func IsDevanagari(r rune) bool {
	return r >= 0x0900 && r < 0x0980
}

// ContainsDevanagari reports whether text has at least one Devanagari rune.
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if IsDevanagari(r) {
			return true
		}
	}
	return false
}

// Devanagari tokenizes Devanagari-script text: punctuation (including danda
// marks) is split into separate tokens, everything else splits on whitespace.
// No case folding is applied since Devanagari has no letter case.
func Devanagari(text string) []string {
	var b strings.Builder
	b.Grow(len(text) + 16)
	for _, r := range text {
		if strings.ContainsRune(devanagariPunct, r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Fields(b.String())
}
