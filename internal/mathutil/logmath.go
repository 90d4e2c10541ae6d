package mathutil

import "math"

// LogZero represents log(0), used as negative infinity in log-domain arithmetic.
const LogZero = -1e30

// SafeLog returns log(x), flooring x at floor first so the result is always
// finite. Used wherever a probability may be zero before smoothing.
func SafeLog(x, floor float64) float64 {
	if x < floor {
		x = floor
	}
	return math.Log(x)
}

// ClosestLength returns the value in lengths with the minimum absolute
// difference to target. Ties keep the first such value in input order.
// Returns 0 when lengths is empty.
func ClosestLength(target int, lengths []int) int {
	if len(lengths) == 0 {
		return 0
	}
	best := lengths[0]
	bestDiff := absInt(lengths[0] - target)
	for _, l := range lengths[1:] {
		if d := absInt(l - target); d < bestDiff {
			best = l
			bestDiff = d
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
