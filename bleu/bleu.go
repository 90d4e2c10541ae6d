package bleu

import (
	"fmt"
	"math"

	"github.com/ieee0824/mteval-go/internal/mathutil"
	"github.com/ieee0824/mteval-go/tokenize"
)

// DefaultSmoothEps is the floor substituted for zero precisions in smoothed
// mode.
const DefaultSmoothEps = 1e-9

// Options controls BLEU computation.
type Options struct {
	MaxOrder  int       // highest n-gram order; 0 means 4
	Weights   []float64 // per-order weights, renormalized to sum to 1; nil means uniform
	Smooth    bool      // floor zero precisions instead of zeroing the whole score
	SmoothEps float64   // floor used in smoothed mode; 0 means DefaultSmoothEps
}

// DefaultOptions returns the reference BLEU-4 configuration: uniform weights,
// no smoothing.
func DefaultOptions() Options {
	return Options{MaxOrder: 4}
}

// Stat is the per-order precision detail of one evaluation.
type Stat struct {
	N         int     `json:"n"`
	Clipped   int     `json:"clipped"`
	Total     int     `json:"total"`
	Precision float64 `json:"precision"`
}

// Result is the full sentence-level BLEU breakdown. It is built fresh per
// call and never mutated afterwards.
type Result struct {
	Score           float64   `json:"score"`
	Stats           []Stat    `json:"stats"`      // per-order (clipped, total, precision)
	Cumulative      []float64 `json:"cumulative"` // diagnostic BLEU-n = BP x p_n, per order
	BrevityPenalty  float64   `json:"brevity_penalty"`
	CandidateLength int       `json:"candidate_length"`
	ReferenceLength int       `json:"reference_length"` // effective (closest) reference length
	LengthRatio     float64   `json:"length_ratio"`
	GeometricMean   float64   `json:"geometric_mean"`
	Weights         []float64 `json:"weights"` // renormalized weights actually applied
}

// CorpusResult is the corpus-level aggregate breakdown.
type CorpusResult struct {
	Score           float64 `json:"score"`
	Stats           []Stat  `json:"stats"` // per-order summed (clipped, total) and their ratio
	BrevityPenalty  float64 `json:"brevity_penalty"`
	CandidateLength int     `json:"candidate_length"` // summed candidate length
	ReferenceLength int     `json:"reference_length"` // summed effective reference lengths
	GeometricMean   float64 `json:"geometric_mean"`
	Sentences       int     `json:"sentences"`
}

// Score computes sentence-level BLEU for a candidate string against reference
// strings. Inputs are whitespace-tokenized and case-folded.
func Score(candidate string, references []string, opts Options) (*Result, error) {
	refTokens := make([][]string, len(references))
	for i, ref := range references {
		refTokens[i] = tokenize.Tokenize(ref)
	}
	return ScoreTokens(tokenize.Tokenize(candidate), refTokens, opts)
}

// ScoreTokens is Score over pre-tokenized input.
func ScoreTokens(candidate []string, references [][]string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	weights, err := normalizeWeights(opts.Weights, opts.MaxOrder)
	if err != nil {
		return nil, err
	}

	if len(candidate) == 0 {
		return emptyCandidateResult(references, weights, opts.MaxOrder), nil
	}

	stats := make([]Stat, opts.MaxOrder)
	for n := 1; n <= opts.MaxOrder; n++ {
		clipped, total, p := ModifiedPrecision(candidate, references, n)
		stats[n-1] = Stat{N: n, Clipped: clipped, Total: total, Precision: p}
	}

	refLengths := make([]int, len(references))
	for i, ref := range references {
		refLengths[i] = len(ref)
	}
	bp, effRef := BrevityPenalty(len(candidate), refLengths)

	gm := geometricMean(stats, weights, opts.Smooth, opts.SmoothEps)

	cumulative := make([]float64, opts.MaxOrder)
	for i, s := range stats {
		cumulative[i] = bp * s.Precision
	}

	ratio := 0.0
	if effRef > 0 {
		ratio = float64(len(candidate)) / float64(effRef)
	}

	return &Result{
		Score:           bp * gm,
		Stats:           stats,
		Cumulative:      cumulative,
		BrevityPenalty:  bp,
		CandidateLength: len(candidate),
		ReferenceLength: effRef,
		LengthRatio:     ratio,
		GeometricMean:   gm,
		Weights:         weights,
	}, nil
}

// ScoreCorpus computes corpus-level BLEU: clipped/total counts and length
// pairs are summed over all sentence pairs before any precision, penalty, or
// mean is taken. This is the standard corpus definition, not an average of
// per-sentence scores.
func ScoreCorpus(candidates []string, references [][]string, opts Options) (*CorpusResult, error) {
	if len(candidates) != len(references) {
		return nil, fmt.Errorf("bleu: %d candidates but %d reference lists", len(candidates), len(references))
	}
	opts = opts.withDefaults()
	weights, err := normalizeWeights(opts.Weights, opts.MaxOrder)
	if err != nil {
		return nil, err
	}

	stats := make([]Stat, opts.MaxOrder)
	for n := 1; n <= opts.MaxOrder; n++ {
		stats[n-1].N = n
	}
	totalCand, totalRef := 0, 0

	for i, cand := range candidates {
		candTokens := tokenize.Tokenize(cand)
		refTokens := make([][]string, len(references[i]))
		refLengths := make([]int, len(references[i]))
		for j, ref := range references[i] {
			refTokens[j] = tokenize.Tokenize(ref)
			refLengths[j] = len(refTokens[j])
		}

		for n := 1; n <= opts.MaxOrder; n++ {
			clipped, total, _ := ModifiedPrecision(candTokens, refTokens, n)
			stats[n-1].Clipped += clipped
			stats[n-1].Total += total
		}

		totalCand += len(candTokens)
		totalRef += mathutil.ClosestLength(len(candTokens), refLengths)
	}

	for i := range stats {
		if stats[i].Total > 0 {
			stats[i].Precision = float64(stats[i].Clipped) / float64(stats[i].Total)
		}
	}

	var bp float64
	switch {
	case totalCand == 0:
		bp = 0
	case totalCand >= totalRef:
		bp = 1
	default:
		bp = math.Exp(1 - float64(totalRef)/float64(totalCand))
	}

	gm := geometricMean(stats, weights, opts.Smooth, opts.SmoothEps)

	return &CorpusResult{
		Score:           bp * gm,
		Stats:           stats,
		BrevityPenalty:  bp,
		CandidateLength: totalCand,
		ReferenceLength: totalRef,
		GeometricMean:   gm,
		Sentences:       len(candidates),
	}, nil
}

func (o Options) withDefaults() Options {
	if o.MaxOrder <= 0 {
		o.MaxOrder = 4
	}
	if o.SmoothEps <= 0 {
		o.SmoothEps = DefaultSmoothEps
	}
	return o
}

// normalizeWeights validates a weight vector and renormalizes it to sum to 1.
// A nil vector or one that sums to zero becomes uniform; negative weights and
// length mismatches are rejected.
func normalizeWeights(weights []float64, maxOrder int) ([]float64, error) {
	if weights == nil {
		uniform := make([]float64, maxOrder)
		for i := range uniform {
			uniform[i] = 1.0 / float64(maxOrder)
		}
		return uniform, nil
	}
	if len(weights) != maxOrder {
		return nil, fmt.Errorf("bleu: %d weights for max order %d", len(weights), maxOrder)
	}
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("bleu: negative weight %g", w)
		}
		sum += w
	}
	normalized := make([]float64, maxOrder)
	if sum <= 0 {
		for i := range normalized {
			normalized[i] = 1.0 / float64(maxOrder)
		}
		return normalized, nil
	}
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, nil
}

// geometricMean computes exp(sum w_i * log(p_i)) over the n-gram orders that
// have a nonzero denominator; orders the candidate is too short for are
// excluded and the remaining weights renormalized. In strict mode any zero
// precision among the included orders makes the mean zero; in smoothed mode
// zero precisions are floored at eps instead. An all-zero overlap is zero in
// both modes.
func geometricMean(stats []Stat, weights []float64, smooth bool, eps float64) float64 {
	var valid []int
	for i, s := range stats {
		if s.Total > 0 {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return 0
	}

	allZero := true
	for _, i := range valid {
		if stats[i].Precision > 0 {
			allZero = false
		} else if !smooth {
			return 0
		}
	}
	if allZero {
		return 0
	}

	weightSum := 0.0
	for _, i := range valid {
		weightSum += weights[i]
	}

	logSum := 0.0
	for _, i := range valid {
		w := 1.0 / float64(len(valid))
		if weightSum > 0 {
			w = weights[i] / weightSum
		}
		logSum += w * mathutil.SafeLog(stats[i].Precision, eps)
	}
	return math.Exp(logSum)
}

// emptyCandidateResult is the defined-zero result for an empty candidate: all
// precisions zero, BP zero, and the minimum reference length reported for
// diagnostics.
func emptyCandidateResult(references [][]string, weights []float64, maxOrder int) *Result {
	stats := make([]Stat, maxOrder)
	for n := 1; n <= maxOrder; n++ {
		stats[n-1].N = n
	}
	minRef := 0
	for i, ref := range references {
		if i == 0 || len(ref) < minRef {
			minRef = len(ref)
		}
	}
	return &Result{
		Stats:           stats,
		Cumulative:      make([]float64, maxOrder),
		ReferenceLength: minRef,
		Weights:         weights,
	}
}
