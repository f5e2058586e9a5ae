package results

import (
	"fmt"
	"math"

	"github.com/avukotic/tsbench/internal/metrics"
)

// ClassifierResult holds the predictions of one classifier on one
// dataset resample, plus the statistics derived from them.
type ClassifierResult struct {
	Meta

	TrueLabels    []int
	Predictions   []int
	Probabilities [][]float64
	NClasses      int

	Accuracy         float64
	BalancedAccuracy float64
	NegLogLikelihood float64

	statsComputed bool
}

func NewClassifierResult(meta Meta, yTrue, yPred []int, probabilities [][]float64) *ClassifierResult {
	return &ClassifierResult{
		Meta:             meta,
		TrueLabels:       yTrue,
		Predictions:      yPred,
		Probabilities:    probabilities,
		NClasses:         countClasses(yTrue, probabilities),
		Accuracy:         math.NaN(),
		BalancedAccuracy: math.NaN(),
		NegLogLikelihood: math.NaN(),
	}
}

// ComputeStatistics fills in all derived statistics from the stored
// predictions. Statistics already present (for example an accuracy read
// from a result file header) are kept. Repeat calls are no-ops.
func (r *ClassifierResult) ComputeStatistics() error {
	if r.statsComputed {
		return nil
	}
	if len(r.TrueLabels) == 0 || len(r.TrueLabels) != len(r.Predictions) {
		return fmt.Errorf("classifier result %s/%s: %d true labels vs %d predictions",
			r.Estimator, r.Dataset, len(r.TrueLabels), len(r.Predictions))
	}

	if math.IsNaN(r.Accuracy) {
		r.Accuracy = metrics.Accuracy(r.TrueLabels, r.Predictions)
	}
	if math.IsNaN(r.BalancedAccuracy) {
		r.BalancedAccuracy = metrics.BalancedAccuracy(r.TrueLabels, r.Predictions)
	}
	if math.IsNaN(r.NegLogLikelihood) {
		r.NegLogLikelihood = metrics.NegativeLogLikelihood(r.TrueLabels, r.Probabilities)
	}

	r.statsComputed = true
	return nil
}

func countClasses(yTrue []int, probabilities [][]float64) int {
	if len(probabilities) > 0 {
		return len(probabilities[0])
	}
	seen := make(map[int]struct{})
	for _, label := range yTrue {
		seen[label] = struct{}{}
	}
	return len(seen)
}
