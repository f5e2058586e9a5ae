package results

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avukotic/tsbench/internal/timeunit"
)

func testMeta() Meta {
	return Meta{
		Estimator:   "knn-dtw",
		Dataset:     "GunPoint",
		Split:       "TEST",
		Resample:    0,
		HasResample: true,
		Unit:        timeunit.Milliseconds,
		FitTime:     12,
		PredictTime: 3,
	}
}

func TestClassifierResultComputeStatistics(t *testing.T) {
	r := NewClassifierResult(testMeta(),
		[]int{0, 1, 0, 1},
		[]int{0, 1, 1, 1},
		[][]float64{{0.9, 0.1}, {0.2, 0.8}, {0.4, 0.6}, {0.3, 0.7}},
	)

	require.NoError(t, r.ComputeStatistics())
	assert.InDelta(t, 0.75, r.Accuracy, 1e-9)
	assert.InDelta(t, 0.75, r.BalancedAccuracy, 1e-9)
	assert.Greater(t, r.NegLogLikelihood, 0.0)

	t.Run("repeat calls do not recompute", func(t *testing.T) {
		accuracy := r.Accuracy
		nll := r.NegLogLikelihood

		// A second call must not touch anything, even if the payload
		// changed underneath.
		r.Predictions[0] = 1
		require.NoError(t, r.ComputeStatistics())
		assert.Equal(t, accuracy, r.Accuracy)
		assert.Equal(t, nll, r.NegLogLikelihood)
	})
}

func TestClassifierResultKeepsLoadedStatistics(t *testing.T) {
	r := &ClassifierResult{
		Meta:             testMeta(),
		TrueLabels:       []int{0, 1},
		Predictions:      []int{1, 0},
		Accuracy:         0.5, // pretend the file header said so
		BalancedAccuracy: math.NaN(),
		NegLogLikelihood: math.NaN(),
	}

	require.NoError(t, r.ComputeStatistics())
	assert.InDelta(t, 0.5, r.Accuracy, 1e-9)
	assert.InDelta(t, 0.0, r.BalancedAccuracy, 1e-9)
}

func TestClassifierResultLengthMismatch(t *testing.T) {
	r := NewClassifierResult(testMeta(), []int{0, 1}, []int{0}, nil)
	assert.Error(t, r.ComputeStatistics())
}

func TestRegressorResultComputeStatistics(t *testing.T) {
	r := NewRegressorResult(testMeta(), []float64{3, 4}, []float64{1, 2})

	require.NoError(t, r.ComputeStatistics())
	assert.InDelta(t, 4.0, r.MSE, 1e-9)
	assert.InDelta(t, 2.0, r.RMSE, 1e-9)
	assert.InDelta(t, 2.0, r.MAE, 1e-9)
}

func TestClustererResultComputeStatistics(t *testing.T) {
	r := NewClustererResult(testMeta(),
		[]int{0, 0, 1, 1},
		[]int{1, 1, 0, 0},
		nil,
	)

	require.NoError(t, r.ComputeStatistics())
	assert.InDelta(t, 1.0, r.ClusteringAccuracy, 1e-9)
	assert.Equal(t, 2, r.NClusters)
}

func TestForecasterResultComputeStatistics(t *testing.T) {
	r := NewForecasterResult(testMeta(), []float64{100, 200}, []float64{110, 180})

	require.NoError(t, r.ComputeStatistics())
	assert.InDelta(t, 0.1, r.MAPE, 1e-9)
}
