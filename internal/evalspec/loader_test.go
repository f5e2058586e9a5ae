package evalspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avukotic/tsbench/internal/results"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		yaml := `
name: bake-off
kind: classifier
load_path: /data/results
save_path: /data/eval
estimators: [1nn-dtw, 1nn-euclidean]
datasets: [GunPoint, ItalyPowerDemand]
resamples: [0, 1, 2]
splits: [test]
error_on_missing: true
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "bake-off", s.Name)
		assert.Equal(t, results.KindClassifier, s.Kind)
		assert.Equal(t, []string{"1nn-dtw", "1nn-euclidean"}, s.Estimators)
		assert.Equal(t, []int{0, 1, 2}, s.Resamples)
		assert.Equal(t, []string{"test"}, s.Splits)
		assert.True(t, s.ErrorOnMissing)
	})

	t.Run("defaults applied", func(t *testing.T) {
		yaml := `
kind: clusterer
load_path: /data/results
save_path: /data/eval
estimators: [elasticsom-dtw]
datasets: [GunPoint]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "clusterer_evaluation", s.Name)
		assert.Equal(t, []int{0}, s.Resamples)
		assert.Empty(t, s.Splits)
		assert.False(t, s.ErrorOnMissing)
	})

	t.Run("no kind", func(t *testing.T) {
		yaml := `
load_path: /data/results
save_path: /data/eval
estimators: [a]
datasets: [d]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "no kind")
	})

	t.Run("invalid kind", func(t *testing.T) {
		yaml := `
kind: ranker
load_path: /data/results
save_path: /data/eval
estimators: [a]
datasets: [d]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, `invalid kind "ranker"`)
	})

	t.Run("missing paths", func(t *testing.T) {
		_, err := Parse([]byte("kind: classifier\nsave_path: /e\nestimators: [a]\ndatasets: [d]\n"))
		assert.ErrorContains(t, err, "no load_path")

		_, err = Parse([]byte("kind: classifier\nload_path: /r\nestimators: [a]\ndatasets: [d]\n"))
		assert.ErrorContains(t, err, "no save_path")
	})

	t.Run("no estimators", func(t *testing.T) {
		yaml := `
kind: classifier
load_path: /r
save_path: /e
datasets: [d]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "no estimators")
	})

	t.Run("invalid split", func(t *testing.T) {
		yaml := `
kind: classifier
load_path: /r
save_path: /e
estimators: [a]
datasets: [d]
splits: [validation]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, `invalid split "validation"`)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("kind: [unclosed"))
		assert.ErrorContains(t, err, "parse spec YAML")
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eval.yaml")
	content := `
kind: regressor
load_path: /r
save_path: /e
estimators: [1nn-euclidean]
datasets: [Covid3Month]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, results.KindRegressor, s.Kind)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read spec file")
}
