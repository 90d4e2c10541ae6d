// Package decoder implements phrase-based translation search: a
// coverage-constrained beam search over phrase applications, scored by a
// log-linear combination of phrase table and language model, plus a cheap
// greedy longest-match variant.
package decoder

// Config holds search parameters.
type Config struct {
	BeamWidth     int     // hypotheses kept after each expansion round
	MaxPhraseLen  int     // longest source span considered
	LMWeight      float64 // language model weight in the log-linear score
	TMEpsilon     float64 // added to phrase probabilities before log
	MaxIterFactor int     // expansion round cap = factor * source length
	LMCacheSize   int     // per-decode LM memoization entries
}

// DefaultConfig returns reasonable default parameters.
func DefaultConfig() Config {
	return Config{
		BeamWidth:     10,
		MaxPhraseLen:  4,
		LMWeight:      0.5,
		TMEpsilon:     1e-10,
		MaxIterFactor: 2,
		LMCacheSize:   4096,
	}
}
