// Package quantile computes sample quantiles with linear interpolation
// between order statistics (the R type-7 rule).
package quantile

import "math"

// Linear returns the p-quantile of sorted, which must be ascending and
// non-empty, with p in [0, 1]. The result interpolates linearly between the
// two order statistics straddling p*(n-1).
func Linear(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}

	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
