// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"math"
	"sort"
)

// computeStats returns the mean, population standard deviation (divide by
// N, not N-1), and conventional median of values, each rounded to two
// decimal places. values must be non-empty; CloseRound guards this.
func computeStats(values []float64) (avg, sdev, median float64) {
	n := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var sqDiff float64
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	med := sorted[mid]
	if len(sorted)%2 == 0 {
		med = (sorted[mid-1] + sorted[mid]) / 2
	}

	return round2(mean), round2(math.Sqrt(sqDiff / n)), round2(med)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
