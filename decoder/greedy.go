package decoder

import (
	"strings"

	"github.com/ieee0824/mteval-go/tokenize"
)

// TranslateGreedy translates by always taking the longest phrase-table match
// at the leftmost uncovered position, with no scoring or backtracking. It is
// the fast baseline-quality counterpart to Translate with the same
// input/output contract.
func (d *Decoder) TranslateGreedy(source string) string {
	src := tokenize.Clean(source)
	if len(src) == 0 {
		return ""
	}

	var out []string
	for i := 0; i < len(src); {
		matched := false
		for length := min(d.cfg.MaxPhraseLen, len(src)-i); length >= 1; length-- {
			span := strings.Join(src[i:i+length], " ")
			if len(d.table.Lookup(span)) == 0 {
				continue
			}
			// Empty target phrases drop the span from the output (articles
			// with no target-language counterpart).
			if best := d.table.Best(span); best.Phrase != "" {
				out = append(out, strings.Fields(best.Phrase)...)
			}
			i += length
			matched = true
			break
		}
		if !matched {
			// OOV: copy the source token through.
			out = append(out, src[i])
			i++
		}
	}
	return strings.Join(out, " ")
}
