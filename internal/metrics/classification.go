package metrics

import "math"

// Accuracy computes the fraction of predictions matching the true labels.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// BalancedAccuracy computes the mean per-class recall over the classes
// present in the true labels.
func BalancedAccuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	total := make(map[int]int)
	correct := make(map[int]int)
	for i, label := range yTrue {
		total[label]++
		if yPred[i] == label {
			correct[label]++
		}
	}

	var sumRecall float64
	for label, n := range total {
		sumRecall += float64(correct[label]) / float64(n)
	}
	return sumRecall / float64(len(total))
}

// NegativeLogLikelihood computes the mean negative log2-likelihood the
// probability estimates assign to the true labels. Probabilities are
// clamped away from zero so a single confident miss stays finite.
func NegativeLogLikelihood(yTrue []int, probabilities [][]float64) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(probabilities) {
		return 0
	}

	const floor = 1e-16

	var sum float64
	for i, label := range yTrue {
		p := floor
		if label >= 0 && label < len(probabilities[i]) {
			p = math.Max(probabilities[i][label], floor)
		}
		sum -= math.Log2(p)
	}
	return sum / float64(len(yTrue))
}
