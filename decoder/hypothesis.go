package decoder

import "math/bits"

// coverage is a bitset over source token positions. A position is set once
// the span containing it has been translated.
type coverage []uint64

func newCoverage(n int) coverage {
	return make(coverage, (n+63)/64)
}

func (c coverage) covered(i int) bool {
	return c[i/64]&(1<<(i%64)) != 0
}

func (c coverage) count() int {
	n := 0
	for _, w := range c {
		n += bits.OnesCount64(w)
	}
	return n
}

// withRange returns a copy of c with [start, end) set. The receiver is never
// mutated: sibling hypotheses share parents.
func (c coverage) withRange(start, end int) coverage {
	next := make(coverage, len(c))
	copy(next, c)
	for i := start; i < end; i++ {
		next[i/64] |= 1 << (i % 64)
	}
	return next
}

// hypothesis is one partial translation in the beam. Its slices are
// exclusively owned and copied on extension, never mutated in place.
type hypothesis struct {
	target  []string
	cov     coverage
	tmScore float64
	lmScore float64
}

// total is the log-linear combination used for pruning and selection.
func (h *hypothesis) total(lmWeight float64) float64 {
	return h.tmScore + lmWeight*h.lmScore
}

func (h *hypothesis) complete(sourceLen int) bool {
	return h.cov.count() == sourceLen
}

// extend derives a successor covering [start, end) with the given target
// tokens and translation-model delta. The LM score is set by the caller once
// the full extended sequence is known.
func (h *hypothesis) extend(targetTokens []string, start, end int, tmDelta float64) *hypothesis {
	target := make([]string, len(h.target), len(h.target)+len(targetTokens))
	copy(target, h.target)
	target = append(target, targetTokens...)
	return &hypothesis{
		target:  target,
		cov:     h.cov.withRange(start, end),
		tmScore: h.tmScore + tmDelta,
	}
}
