package bleu

// ModifiedPrecision computes the clipped n-gram precision of a candidate
// against one or more references.
//
// Each candidate n-gram count is clipped to the maximum count of that n-gram
// in any single reference (max across references, never the sum — multiple
// similar references must not inflate precision). Returns the summed clipped
// counts, the total candidate n-gram count, and their ratio (0 when the
// candidate has no n-grams of this order).
func ModifiedPrecision(candidate []string, references [][]string, n int) (clipped, total int, precision float64) {
	candCounts := NGrams(candidate, n)

	maxRefCounts := make(Counts)
	for _, ref := range references {
		for gram, count := range NGrams(ref, n) {
			if count > maxRefCounts[gram] {
				maxRefCounts[gram] = count
			}
		}
	}

	for gram, count := range candCounts {
		total += count
		if max := maxRefCounts[gram]; count <= max {
			clipped += count
		} else {
			clipped += max
		}
	}

	if total > 0 {
		precision = float64(clipped) / float64(total)
	}
	return clipped, total, precision
}
