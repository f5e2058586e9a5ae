package estimators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKNNClassifierPredictProba(t *testing.T) {
	c, err := NewKNNClassifier(1, DistanceEuclidean)
	require.NoError(t, err)

	xTrain := [][]float64{{0, 0, 0}, {0.2, 0.1, 0}, {5, 5, 5}, {5.1, 4.9, 5}}
	yTrain := []int{0, 0, 1, 1}
	require.NoError(t, c.Fit(xTrain, yTrain))

	probs, err := c.PredictProba([][]float64{{0.1, 0.1, 0.1}, {4.8, 5.2, 5}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, probs)
}

func TestKNNClassifierSplitsVotes(t *testing.T) {
	c, err := NewKNNClassifier(3, DistanceEuclidean)
	require.NoError(t, err)

	xTrain := [][]float64{{0}, {0.1}, {0.2}, {10}}
	yTrain := []int{0, 0, 1, 1}
	require.NoError(t, c.Fit(xTrain, yTrain))

	probs, err := c.PredictProba([][]float64{{0}})
	require.NoError(t, err)
	require.Len(t, probs, 1)
	assert.InDelta(t, 2.0/3.0, probs[0][0], 1e-9)
	assert.InDelta(t, 1.0/3.0, probs[0][1], 1e-9)
}

func TestKNNClassifierDistanceChoice(t *testing.T) {
	// A shifted spike: warping aligns it with the spike prototype while
	// the lockstep distance prefers the flat prototype.
	xTrain := [][]float64{{0, 0, 10, 0, 0}, {5, 5, 5, 5, 5}}
	yTrain := []int{0, 1}
	query := [][]float64{{0, 10, 0, 0, 0}}

	euclid, err := NewKNNClassifier(1, DistanceEuclidean)
	require.NoError(t, err)
	require.NoError(t, euclid.Fit(xTrain, yTrain))
	probs, err := euclid.PredictProba(query)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}}, probs)

	warped, err := NewKNNClassifier(1, DistanceDTW)
	require.NoError(t, err)
	require.NoError(t, warped.Fit(xTrain, yTrain))
	probs, err = warped.PredictProba(query)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}}, probs)
}

func TestKNNClassifierTrainProbabilitiesLeaveOneOut(t *testing.T) {
	c, err := NewKNNClassifier(1, DistanceEuclidean)
	require.NoError(t, err)

	xTrain := [][]float64{{0}, {0.1}, {10}}
	yTrain := []int{0, 0, 1}
	require.NoError(t, c.Fit(xTrain, yTrain))

	// The lone class-1 series cannot vote for itself, so its nearest
	// remaining neighbour misclassifies it. Resubstitution would not.
	train, err := c.TrainProbabilities()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {1, 0}, {1, 0}}, train)

	resub, err := c.PredictProba(xTrain)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {1, 0}, {0, 1}}, resub)
}

func TestKNNClassifierValidation(t *testing.T) {
	_, err := NewKNNClassifier(0, DistanceEuclidean)
	assert.ErrorContains(t, err, "k must be at least 1")

	_, err = NewKNNClassifier(1, "manhattan")
	assert.ErrorContains(t, err, `unknown distance "manhattan"`)

	c, err := NewKNNClassifier(2, DistanceEuclidean)
	require.NoError(t, err)

	_, err = c.PredictProba([][]float64{{0}})
	assert.ErrorContains(t, err, "not fitted")

	err = c.Fit([][]float64{{0}, {1}}, []int{0})
	assert.ErrorContains(t, err, "matching series and labels")

	err = c.Fit([][]float64{{0}}, []int{0})
	assert.ErrorContains(t, err, "exceeds")

	err = c.Fit([][]float64{{0}, {1}}, []int{0, -1})
	assert.ErrorContains(t, err, "non-negative")
}

func TestKNNClassifierNameAndParams(t *testing.T) {
	c, err := NewKNNClassifier(1, DistanceDTW)
	require.NoError(t, err)
	assert.Equal(t, "1nn-dtw", c.Name())
	assert.Equal(t, "k: 1 distance: dtw", c.Params())
}

func TestKNNRegressorPredict(t *testing.T) {
	r, err := NewKNNRegressor(1, DistanceEuclidean)
	require.NoError(t, err)

	xTrain := [][]float64{{0}, {10}}
	yTrain := []float64{1.5, 3.5}
	require.NoError(t, r.Fit(xTrain, yTrain))

	preds, err := r.Predict([][]float64{{1}, {9}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3.5}, preds)

	wide, err := NewKNNRegressor(2, DistanceEuclidean)
	require.NoError(t, err)
	require.NoError(t, wide.Fit(xTrain, yTrain))

	preds, err = wide.Predict([][]float64{{4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5}, preds)
}

func TestKNNRegressorTrainPredictionsLeaveOneOut(t *testing.T) {
	r, err := NewKNNRegressor(1, DistanceEuclidean)
	require.NoError(t, err)

	xTrain := [][]float64{{0}, {0.1}, {10}}
	yTrain := []float64{1, 2, 9}
	require.NoError(t, r.Fit(xTrain, yTrain))

	preds, err := r.TrainPredictions()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 2}, preds)
}

func TestKNNRegressorValidation(t *testing.T) {
	r, err := NewKNNRegressor(1, DistanceEuclidean)
	require.NoError(t, err)

	_, err = r.Predict([][]float64{{0}})
	assert.ErrorContains(t, err, "not fitted")

	require.NoError(t, r.Fit([][]float64{{0}}, []float64{1}))
	_, err = r.TrainPredictions()
	assert.ErrorContains(t, err, "leave-one-out")
}
