// Package distances provides the elastic and lockstep distance measures
// used by the time-series estimators.
package distances

import "math"

// Euclidean computes the lockstep euclidean distance between two equal
// length series. Series of different lengths are compared over the
// shorter prefix.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean is Euclidean without the final square root.
func SquaredEuclidean(a, b []float64) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := 0; i < n; i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
