// Package tokenize provides the whitespace tokenization shared by the BLEU
// scorer and the decoders.
package tokenize

import "strings"

// Tokenize splits text on whitespace and lowercases each token.
// Returns nil for empty or whitespace-only input.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

// surrounding punctuation stripped from tokens before phrase table lookup
const punctCutset = ".,!?;:\"'-()[]{}"

// TrimPunct removes leading and trailing punctuation from a token.
// May return an empty string when the token is punctuation only.
func TrimPunct(token string) string {
	return strings.Trim(token, punctCutset)
}

// Clean tokenizes text and strips surrounding punctuation from each token,
// dropping tokens that were punctuation only. Devanagari-script text is
// routed through the Devanagari tokenizer instead.
func Clean(text string) []string {
	if ContainsDevanagari(text) {
		var tokens []string
		for _, tok := range Devanagari(text) {
			if strings.Trim(tok, devanagariPunct) != "" {
				tokens = append(tokens, tok)
			}
		}
		return tokens
	}
	var tokens []string
	for _, tok := range Tokenize(text) {
		if cleaned := TrimPunct(tok); cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}
