package market

import "sort"

// Summary is a five-number description of a value sample. The numeric
// fields are nil when Count is zero: an aggregation over no valid records
// is an empty result, not an error.
type Summary struct {
	Count  int      `json:"count"`
	Min    *float64 `json:"min,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Avg    *float64 `json:"avg,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// Summarize computes min/median/avg/max over the values. The input slice
// is not modified.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	avg := sum / float64(n)

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Summary{
		Count:  n,
		Min:    &sorted[0],
		Median: &median,
		Avg:    &avg,
		Max:    &sorted[n-1],
	}
}
