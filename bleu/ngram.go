// Package bleu implements the BLEU machine-translation metric of
// Papineni et al. (2002): modified n-gram precision with clipping, brevity
// penalty, and a weighted geometric mean, at sentence and corpus level.
package bleu

import "strings"

// ngramSep joins the tokens of an n-gram into a map key. An information
// separator keeps "a b"+"c" distinct from "a"+"b c".
const ngramSep = "\x1f"

// Counts maps an n-gram (joined token tuple) to its occurrence count.
type Counts map[string]int

// NGrams returns the count map of all order-n n-grams in tokens.
// Returns an empty map when len(tokens) < n or n <= 0.
func NGrams(tokens []string, n int) Counts {
	counts := make(Counts)
	if n <= 0 || len(tokens) < n {
		return counts
	}
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], ngramSep)]++
	}
	return counts
}
