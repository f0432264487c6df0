// Package stats computes the descriptive statistics reported after a batch
// of trials.
package stats

import (
	"math"
	"sort"
)

// Summary holds the five descriptive statistics over a set of operation
// counts.
type Summary struct {
	Min    int64
	Max    int64
	Mean   float64
	Median float64
	// StdDev is the sample standard deviation (n-1 denominator). It is 0
	// for a single value.
	StdDev float64
}

// Summarize computes a Summary over values. It reports false for an empty
// input. The input slice is not modified.
func Summarize(values []int64) (Summary, bool) {
	if len(values) == 0 {
		return Summary{}, false
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum int64
	for _, v := range sorted {
		sum += v
	}
	mean := float64(sum) / float64(len(sorted))

	variance := 0.0
	if len(sorted) > 1 {
		for _, v := range sorted {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(len(sorted) - 1)
	}

	return Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: median(sorted),
		StdDev: math.Sqrt(variance),
	}, true
}

// median expects its input sorted. For an even count it averages the two
// middle values.
func median(sorted []int64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
