package market

import (
	"math"
	"testing"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{name: "q1", p: 0.25, want: 3.25},
		{name: "q3", p: 0.75, want: 7.75},
		{name: "median", p: 0.5, want: 5.5},
		{name: "min", p: 0, want: 1},
		{name: "max", p: 1, want: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Quantile(sample, tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIQRFences(t *testing.T) {
	t.Parallel()

	fences := IQRFences([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100})
	if math.Abs(fences.Upper-14.5) > 1e-9 {
		t.Fatalf("expected upper fence 14.5, got %v", fences.Upper)
	}
	if !fences.Outlier(100) {
		t.Fatalf("expected 100 to be an outlier")
	}
	if fences.Outlier(14.5) {
		t.Fatalf("a value on the fence is not an outlier")
	}
}

func TestIQRFencesSmallSample(t *testing.T) {
	t.Parallel()

	fences := IQRFences([]float64{10, 20, 1000})
	if !math.IsInf(fences.Upper, 1) {
		t.Fatalf("expected unbounded upper fence for a sample of 3, got %v", fences.Upper)
	}
	if fences.Outlier(1000) {
		t.Fatalf("no value is an outlier in a small sample")
	}
}
