package estimators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuildsEveryListedName(t *testing.T) {
	for _, name := range ClassifierNames() {
		c, err := NewClassifier(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
	for _, name := range RegressorNames() {
		r, err := NewRegressor(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, r.Name())
	}
	for _, name := range ClustererNames() {
		cl, err := NewClusterer(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, cl.Name())
	}
	for _, name := range ForecasterNames() {
		f, err := NewForecaster(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name())
	}
}

func TestRegistryRejectsUnknownNames(t *testing.T) {
	_, err := NewClassifier("rocket")
	assert.ErrorContains(t, err, `unknown classifier "rocket"`)
	assert.ErrorContains(t, err, "available: 1nn-dtw, 1nn-euclidean")

	_, err = NewRegressor("rocket")
	assert.ErrorContains(t, err, "unknown regressor")

	_, err = NewClusterer("kmeans")
	assert.ErrorContains(t, err, "unknown clusterer")

	_, err = NewForecaster("arima")
	assert.ErrorContains(t, err, "unknown forecaster")
}
