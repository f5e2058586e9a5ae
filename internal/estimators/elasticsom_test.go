package estimators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flat(v float64) []float64 { return []float64{v, v, v, v} }

// Interleaved so the seed series for the two neurons come from
// different groups.
func twoGroupSeries() [][]float64 {
	return [][]float64{
		flat(0), flat(10), flat(0.2), flat(10.3),
		flat(0.1), flat(9.8), flat(0.3), flat(10.1),
	}
}

func TestElasticSOMSeparatesGroups(t *testing.T) {
	x := twoGroupSeries()

	for _, distance := range []string{DistanceEuclidean, DistanceDTW} {
		t.Run(distance, func(t *testing.T) {
			som, err := NewElasticSOM(2, distance)
			require.NoError(t, err)
			require.NoError(t, som.Fit(x))

			labels := som.Labels()
			require.Len(t, labels, len(x))
			assert.NotEqual(t, labels[0], labels[1])
			for i := 2; i < len(x); i += 2 {
				assert.Equal(t, labels[0], labels[i], "low series %d", i)
				assert.Equal(t, labels[1], labels[i+1], "high series %d", i+1)
			}
		})
	}
}

func TestElasticSOMIsDeterministic(t *testing.T) {
	x := twoGroupSeries()

	first, err := NewElasticSOM(2, DistanceDTW)
	require.NoError(t, err)
	require.NoError(t, first.Fit(x))

	second, err := NewElasticSOM(2, DistanceDTW)
	require.NoError(t, err)
	require.NoError(t, second.Fit(x))

	assert.Equal(t, first.Labels(), second.Labels())
}

func TestElasticSOMPredictMatchesFittedLabels(t *testing.T) {
	x := twoGroupSeries()

	som, err := NewElasticSOM(2, DistanceEuclidean)
	require.NoError(t, err)
	require.NoError(t, som.Fit(x))

	labels, err := som.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, som.Labels(), labels)
	assert.Equal(t, 2, som.NumClusters())
}

func TestElasticSOMValidation(t *testing.T) {
	_, err := NewElasticSOM(0, DistanceEuclidean)
	assert.ErrorContains(t, err, "n_clusters must be at least 1")

	_, err = NewElasticSOM(2, "warp")
	assert.ErrorContains(t, err, `unknown distance "warp"`)

	som, err := NewElasticSOM(3, DistanceEuclidean)
	require.NoError(t, err)

	err = som.Fit([][]float64{flat(0), flat(1)})
	assert.ErrorContains(t, err, "need at least 3 series")

	_, err = som.Predict([][]float64{flat(0)})
	assert.ErrorContains(t, err, "not fitted")
}

func TestElasticSOMNameAndParams(t *testing.T) {
	som, err := NewElasticSOM(2, DistanceDTW)
	require.NoError(t, err)
	assert.Equal(t, "elasticsom-dtw", som.Name())
	assert.Equal(t, "n_clusters: 2 distance: dtw sigma: 1 learning_rate: 0.5 iterations: 50", som.Params())
}
