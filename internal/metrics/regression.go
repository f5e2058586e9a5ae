package metrics

import "math"

// MeanSquaredError computes the mean of squared prediction errors.
func MeanSquaredError(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum / float64(len(yTrue))
}

// RootMeanSquaredError is the square root of the mean squared error.
func RootMeanSquaredError(yTrue, yPred []float64) float64 {
	return math.Sqrt(MeanSquaredError(yTrue, yPred))
}

// MeanAbsoluteError computes the mean of absolute prediction errors.
func MeanAbsoluteError(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(len(yTrue))
}
