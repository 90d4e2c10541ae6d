package decoder

import (
	"math"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ieee0824/mteval-go/language"
	"github.com/ieee0824/mteval-go/phrase"
	"github.com/ieee0824/mteval-go/tokenize"
)

// Decoder runs phrase-based search against an immutable phrase table and
// language model. Decoding is a pure function of its inputs: repeated calls
// with the same source produce identical output.
type Decoder struct {
	table *phrase.Table
	lm    *language.Model
	cfg   Config
}

// New creates a decoder over the given models.
func New(table *phrase.Table, lm *language.Model, cfg Config) *Decoder {
	if cfg.BeamWidth < 1 {
		cfg.BeamWidth = 1
	}
	if cfg.MaxPhraseLen < 1 {
		cfg.MaxPhraseLen = 1
	}
	if cfg.TMEpsilon <= 0 {
		cfg.TMEpsilon = 1e-10
	}
	if cfg.LMCacheSize < 1 {
		cfg.LMCacheSize = 1024
	}
	return &Decoder{table: table, lm: lm, cfg: cfg}
}

// Translate tokenizes source text, runs beam search, and returns the
// space-joined translation. Empty or whitespace-only input yields "".
func (d *Decoder) Translate(source string) string {
	return d.Decode(tokenize.Clean(source)).Text
}

// Decode runs beam search over a tokenized source sentence.
//
// Each round extends every non-terminal hypothesis with every translation of
// every fully-uncovered span up to MaxPhraseLen, then keeps the BeamWidth
// best by total score. Search stops when the best hypothesis in the beam is
// terminal or after MaxIterFactor*len(source) rounds; if no terminal
// hypothesis survives, the best partial translation is returned rather than
// an error.
func (d *Decoder) Decode(source []string) *Result {
	if len(source) == 0 {
		return &Result{}
	}

	// Memoizes LM scores across sibling hypotheses that share a target
	// prefix re-scored in later rounds.
	cache, _ := lru.New[string, float64](d.cfg.LMCacheSize)
	scoreLM := func(target []string) float64 {
		key := strings.Join(target, "\x1f")
		if s, ok := cache.Get(key); ok {
			return s
		}
		s := d.lm.SentenceLogProb(target)
		cache.Add(key, s)
		return s
	}

	srcLen := len(source)
	maxRounds := d.cfg.MaxIterFactor * srcLen
	if maxRounds < 1 {
		maxRounds = 1
	}

	beam := []*hypothesis{{cov: newCoverage(srcLen)}}

	for round := 0; round < maxRounds; round++ {
		var next []*hypothesis
		for _, hyp := range beam {
			if hyp.complete(srcLen) {
				next = append(next, hyp)
				continue
			}
			next = d.expand(next, hyp, source, scoreLM)
		}

		// Stable sort keeps equal-score hypotheses in generation order so
		// tie-breaks depend only on input order.
		sort.SliceStable(next, func(i, j int) bool {
			return next[i].total(d.cfg.LMWeight) > next[j].total(d.cfg.LMWeight)
		})
		if len(next) > d.cfg.BeamWidth {
			next = next[:d.cfg.BeamWidth]
		}
		beam = next

		if len(beam) > 0 && beam[0].complete(srcLen) {
			break
		}
	}

	best := d.selectBest(beam, srcLen)
	if best == nil {
		return &Result{}
	}
	return &Result{
		Text:     strings.Join(best.target, " "),
		Tokens:   best.target,
		TMScore:  best.tmScore,
		LMScore:  best.lmScore,
		Score:    best.total(d.cfg.LMWeight),
		Complete: best.complete(srcLen),
	}
}

// expand appends all successors of hyp to dst: every uncovered start
// position, every span length whose positions are all free, every candidate
// translation of that span. Unknown spans fall back to the identity
// translation so coverage can always grow.
func (d *Decoder) expand(dst []*hypothesis, hyp *hypothesis, source []string, scoreLM func([]string) float64) []*hypothesis {
	srcLen := len(source)
	for start := 0; start < srcLen; start++ {
		if hyp.cov.covered(start) {
			continue
		}
		for length := 1; length <= d.cfg.MaxPhraseLen && start+length <= srcLen; length++ {
			end := start + length
			// Spans grow rightward, so the first covered position blocks
			// all longer spans from this start too.
			if hyp.cov.covered(end - 1) {
				break
			}
			span := strings.Join(source[start:end], " ")
			cands := d.table.Lookup(span)
			if len(cands) == 0 {
				cands = []phrase.Candidate{{Phrase: span, Prob: phrase.FallbackProb}}
			}
			for _, c := range cands {
				next := hyp.extend(strings.Fields(c.Phrase), start, end, math.Log(c.Prob+d.cfg.TMEpsilon))
				next.lmScore = scoreLM(next.target)
				dst = append(dst, next)
			}
		}
	}
	return dst
}

// selectBest returns the highest-scoring terminal hypothesis, or the
// highest-scoring partial one when the beam holds no terminal hypothesis.
func (d *Decoder) selectBest(beam []*hypothesis, srcLen int) *hypothesis {
	var best *hypothesis
	for _, hyp := range beam {
		if !hyp.complete(srcLen) {
			continue
		}
		if best == nil || hyp.total(d.cfg.LMWeight) > best.total(d.cfg.LMWeight) {
			best = hyp
		}
	}
	if best == nil && len(beam) > 0 {
		best = beam[0]
	}
	return best
}
