package bleu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_PerfectMatch(t *testing.T) {
	res, err := Score("the cat is on the mat", []string{"the cat is on the mat"}, DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Score, 1e-12)
	assert.InDelta(t, 1.0, res.BrevityPenalty, 1e-12)
	for _, s := range res.Stats {
		assert.InDelta(t, 1.0, s.Precision, 1e-12, "order %d", s.N)
	}
}

func TestModifiedPrecision_RepeatedTokenClipping(t *testing.T) {
	cand := []string{"the", "the", "the", "the"}
	refs := [][]string{{"the", "cat", "sat", "on", "the", "mat"}}

	clipped, total, p := ModifiedPrecision(cand, refs, 1)
	assert.Equal(t, 2, clipped)
	assert.Equal(t, 4, total)
	assert.InDelta(t, 0.5, p, 1e-12)
}

func TestModifiedPrecision_MaxOverReferences(t *testing.T) {
	cand := []string{"the", "cat"}
	refs := [][]string{{"a", "cat"}, {"the", "dog"}, {"the", "cat"}}

	clipped, total, p := ModifiedPrecision(cand, refs, 1)
	assert.Equal(t, 2, clipped)
	assert.Equal(t, 2, total)
	assert.InDelta(t, 1.0, p, 1e-12)
}

func TestModifiedPrecision_Bounds(t *testing.T) {
	cases := []struct {
		cand []string
		refs [][]string
	}{
		{[]string{"a"}, [][]string{{"b"}}},
		{[]string{"a", "a", "b"}, [][]string{{"a", "b", "c"}, {"a", "a"}}},
		{[]string{"x", "y", "z"}, [][]string{{"x", "y", "z"}}},
		{nil, [][]string{{"a"}}},
	}
	for _, c := range cases {
		for n := 1; n <= 4; n++ {
			clipped, total, p := ModifiedPrecision(c.cand, c.refs, n)
			assert.LessOrEqual(t, clipped, total)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestBrevityPenalty(t *testing.T) {
	bp, r := BrevityPenalty(0, []int{5})
	assert.Equal(t, 0.0, bp)
	assert.Equal(t, 5, r)

	bp, _ = BrevityPenalty(6, []int{5})
	assert.Equal(t, 1.0, bp)

	bp, _ = BrevityPenalty(5, []int{5})
	assert.Equal(t, 1.0, bp)

	bp, r = BrevityPenalty(3, []int{6})
	assert.Equal(t, 6, r)
	assert.InDelta(t, math.Exp(1-2.0), bp, 1e-12)
	assert.Greater(t, bp, 0.0)
	assert.Less(t, bp, 1.0)
}

func TestBrevityPenalty_TieBreakFirstWins(t *testing.T) {
	_, r := BrevityPenalty(5, []int{4, 6})
	assert.Equal(t, 4, r)

	_, r = BrevityPenalty(5, []int{6, 4})
	assert.Equal(t, 6, r)
}

func TestScore_ZeroOverlapStrict(t *testing.T) {
	res, err := Score("x y z w", []string{"a b c d"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
}

func TestScore_SmoothedVersusStrict(t *testing.T) {
	// Unigrams and bigrams partially match; no 3-gram or 4-gram overlap.
	cand := "the cat the cat"
	refs := []string{"the cat sat here"}

	strict, err := Score(cand, refs, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, strict.Score)

	opts := DefaultOptions()
	opts.Smooth = true
	smoothed, err := Score(cand, refs, opts)
	require.NoError(t, err)
	assert.Greater(t, smoothed.Score, 0.0)
	assert.GreaterOrEqual(t, smoothed.Score, strict.Score)
}

func TestScore_ShortCandidateSkipsHighOrders(t *testing.T) {
	// Candidate shorter than max order: 3-gram and 4-gram rows have zero
	// denominators and are excluded from the geometric mean.
	res, err := Score("the cat", []string{"the cat is on the mat"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Stats[2].Total)
	assert.Equal(t, 0, res.Stats[3].Total)
	assert.InDelta(t, 1.0, res.GeometricMean, 1e-12)
	assert.InDelta(t, math.Exp(1-3.0), res.Score, 1e-12) // bp = exp(1 - 6/2)
}

func TestScore_EmptyCandidate(t *testing.T) {
	res, err := Score("", []string{"the cat", "a cat sat"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 0.0, res.BrevityPenalty)
	assert.Equal(t, 0, res.CandidateLength)
	assert.Equal(t, 2, res.ReferenceLength) // minimum reference length
	for _, s := range res.Stats {
		assert.Equal(t, 0.0, s.Precision)
	}
}

func TestScore_EmptyReferenceList(t *testing.T) {
	res, err := Score("the cat", nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
}

func TestScore_WeightValidation(t *testing.T) {
	opts := DefaultOptions()
	opts.Weights = []float64{0.5, 0.5}
	_, err := Score("a b", []string{"a b"}, opts)
	assert.Error(t, err)

	opts.Weights = []float64{0.5, 0.5, -0.5, 0.5}
	_, err = Score("a b", []string{"a b"}, opts)
	assert.Error(t, err)

	// All-zero weights fall back to uniform.
	opts.Weights = []float64{0, 0, 0, 0}
	res, err := Score("the cat is on the mat", []string{"the cat is on the mat"}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Score, 1e-12)
	for _, w := range res.Weights {
		assert.InDelta(t, 0.25, w, 1e-12)
	}
}

func TestScore_WeightsRenormalized(t *testing.T) {
	opts := DefaultOptions()
	opts.Weights = []float64{2, 2, 2, 2}
	res, err := Score("the cat is on the mat", []string{"the cat is on the mat"}, opts)
	require.NoError(t, err)
	for _, w := range res.Weights {
		assert.InDelta(t, 0.25, w, 1e-12)
	}
}

func TestScore_CumulativeDiagnostics(t *testing.T) {
	res, err := Score("the the the the", []string{"the cat sat on the mat"}, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Cumulative, 4)
	assert.InDelta(t, res.BrevityPenalty*0.5, res.Cumulative[0], 1e-12)
	assert.Equal(t, 0.0, res.Cumulative[3])
}

func TestScoreCorpus_NotMeanOfSentences(t *testing.T) {
	opts := Options{MaxOrder: 1}
	cands := []string{"a b", "a"}
	refs := [][]string{{"a b"}, {"a b b b"}}

	s1, err := Score(cands[0], refs[0], opts)
	require.NoError(t, err)
	s2, err := Score(cands[1], refs[1], opts)
	require.NoError(t, err)
	mean := (s1.Score + s2.Score) / 2

	corpus, err := ScoreCorpus(cands, refs, opts)
	require.NoError(t, err)

	// Summed counts: clipped 3/3 unigrams, c=3, r=6.
	assert.InDelta(t, math.Exp(1-2.0), corpus.Score, 1e-12)
	assert.Greater(t, math.Abs(corpus.Score-mean), 0.05)
}

func TestScoreCorpus_LengthMismatch(t *testing.T) {
	_, err := ScoreCorpus([]string{"a"}, nil, DefaultOptions())
	assert.Error(t, err)
}

func TestScoreCorpus_Aggregates(t *testing.T) {
	corpus, err := ScoreCorpus(
		[]string{"the cat is on the mat", "x y"},
		[][]string{{"the cat is on the mat"}, {"x y"}},
		DefaultOptions(),
	)
	require.NoError(t, err)

	assert.Equal(t, 8, corpus.CandidateLength)
	assert.Equal(t, 8, corpus.ReferenceLength)
	assert.InDelta(t, 1.0, corpus.BrevityPenalty, 1e-12)
	assert.Equal(t, 8, corpus.Stats[0].Clipped)
	assert.Equal(t, 8, corpus.Stats[0].Total)
}

func TestNGrams(t *testing.T) {
	counts := NGrams([]string{"a", "b", "a", "b"}, 2)
	assert.Equal(t, 2, counts["a\x1fb"])
	assert.Equal(t, 1, counts["b\x1fa"])

	assert.Empty(t, NGrams([]string{"a"}, 2))
	assert.Empty(t, NGrams([]string{"a"}, 0))
}
