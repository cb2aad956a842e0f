// Package stats summarises latency samples.
//
// All functions taking a "sorted" slice expect ascending order and do not
// check it. Sort first with Sort.
package stats

import (
	"math"
	"slices"
)

// Summary is the reduced form of one run's latency samples, in nanoseconds.
type Summary struct {
	Count int
	Mean  float64
	Min   int64
	Max   int64
	P50   int64
	P90   int64
	P99   int64
	P999  int64
}

// Sort orders samples ascending in place.
func Sort(samples []int64) {
	slices.Sort(samples)
}

// Percentile returns the nearest-rank percentile of sorted samples.
//
// p is a fraction in [0, 1]. The index is floor(p*len) clamped to the last
// element, so p = 0 yields the minimum and p = 1 the maximum. An empty slice
// yields 0.
func Percentile(sorted []int64, p float64) int64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 || math.IsNaN(p) {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	idx := int(math.Floor(p * float64(n)))
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx]
}

// Mean returns the arithmetic mean of samples, or 0 for an empty slice.
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	return sum / float64(len(samples))
}

// Summarize computes the Summary of sorted samples.
func Summarize(sorted []int64) Summary {
	s := Summary{
		Count: len(sorted),
		Mean:  Mean(sorted),
		P50:   Percentile(sorted, 0.50),
		P90:   Percentile(sorted, 0.90),
		P99:   Percentile(sorted, 0.99),
		P999:  Percentile(sorted, 0.999),
	}
	if len(sorted) > 0 {
		s.Min = sorted[0]
		s.Max = sorted[len(sorted)-1]
	}
	return s
}
