package segment

// OtsuThreshold selects the intensity that maximises the between-class
// variance of the histogram. Pixels at or below the result form the low class.
//
// Class counts and sums are carried incrementally while the candidate
// threshold rises, so the search is a single pass over the 256 bins. A
// candidate only replaces the current best when its variance is strictly
// greater, which keeps the smallest of several equal thresholds. Histograms
// with fewer than two populated intensities (including empty ones) yield 0.
func OtsuThreshold(h Histogram) uint8 {
	var countHigh, sumHigh int64
	for i, c := range h {
		countHigh += int64(c)
		sumHigh += int64(c) * int64(i)
	}

	var (
		countLow, sumLow int64
		best             uint8
		bestVariance     float64
	)
	for t, c := range h {
		n := int64(c)
		weighted := n * int64(t)
		countLow += n
		countHigh -= n
		sumLow += weighted
		sumHigh -= weighted

		if countLow == 0 || countHigh == 0 {
			continue
		}

		meanLow := float64(sumLow) / float64(countLow)
		meanHigh := float64(sumHigh) / float64(countHigh)
		diff := meanHigh - meanLow
		variance := float64(countLow) * float64(countHigh) * diff * diff
		if variance > bestVariance {
			bestVariance = variance
			best = uint8(t) // #nosec G115 -- t indexes a 256-entry array
		}
	}
	return best
}
