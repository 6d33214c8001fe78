package market

import "math"

// minFenceSample is the smallest sample size for which IQR fences are
// meaningful. Below it no value is treated as an outlier.
const minFenceSample = 4

// Fences holds Tukey IQR outlier bounds. Only the upper fence is enforced
// by the aggregators: unusually high pay is noise, unusually low pay is
// already removed by the plausibility threshold.
type Fences struct {
	Lower float64
	Upper float64
}

// Quantile returns the p-quantile of sorted using linear interpolation
// between closest ranks (the R-7 method). sorted must be ascending and
// non-empty; p is clamped to [0,1].
func Quantile(sorted []float64, p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	idx := float64(len(sorted)-1) * p
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	w := idx - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// IQRFences computes Tukey fences over an ascending sample. Samples
// smaller than four values get an unbounded upper fence, so nothing is
// filtered on outlier grounds.
func IQRFences(sorted []float64) Fences {
	if len(sorted) < minFenceSample {
		return Fences{
			Lower: math.Inf(-1),
			Upper: math.Inf(1),
		}
	}

	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)
	iqr := q3 - q1

	return Fences{
		Lower: q1 - 1.5*iqr,
		Upper: q3 + 1.5*iqr,
	}
}

// Outlier reports whether v falls outside the fences. Only the upper
// fence is checked.
func (f Fences) Outlier(v float64) bool {
	return v > f.Upper
}
