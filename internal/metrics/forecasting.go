package metrics

import "math"

// MeanAbsolutePercentageError computes the mean of |error| / |actual|.
// Actual values at or near zero are floored to keep the ratio finite.
func MeanAbsolutePercentageError(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	const floor = 2.220446049250313e-16

	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i]-yPred[i]) / math.Max(math.Abs(yTrue[i]), floor)
	}
	return sum / float64(len(yTrue))
}
