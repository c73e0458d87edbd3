// Package stats provides the small set of descriptive statistics used by the
// ingest stage to label outliers.
package stats

import (
	"math"
	"sort"
)

// Quantile computes the q-quantile (0 <= q <= 1) of values using linear
// interpolation between closest ranks. Returns NaN for an empty input.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// IQRFences returns the lower and upper outlier fences for values, defined
// as Q1 - 1.5*IQR and Q3 + 1.5*IQR. Values outside the fences are considered
// statistical outliers.
func IQRFences(values []float64) (lower, upper float64) {
	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}
