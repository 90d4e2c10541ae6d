package bleu

import (
	"math"

	"github.com/ieee0824/mteval-go/internal/mathutil"
)

// BrevityPenalty computes the BLEU brevity penalty for a candidate of length
// c against the given reference lengths, and returns it together with the
// effective reference length r (the reference length closest to c, ties
// resolved to the first in input order).
//
//	BP = 0           when c = 0
//	BP = 1           when c >= r
//	BP = exp(1-r/c)  otherwise
func BrevityPenalty(c int, refLengths []int) (bp float64, r int) {
	r = mathutil.ClosestLength(c, refLengths)
	switch {
	case c == 0:
		return 0, r
	case c >= r:
		return 1, r
	default:
		return math.Exp(1 - float64(r)/float64(c)), r
	}
}
