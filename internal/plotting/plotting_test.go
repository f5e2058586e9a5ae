package plotting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAverageRanks(t *testing.T) {
	// Two datasets, three estimators. Higher is better: the last
	// estimator wins both rows.
	means := mat.NewDense(2, 3, []float64{
		0.7, 0.8, 0.9,
		0.6, 0.6, 0.7,
	})

	avg := AverageRanks(means, true)
	assert.Equal(t, []float64{2.75, 2.25, 1}, avg)
}

func TestSidecarWritesFigurePayload(t *testing.T) {
	dir := t.TempDir()
	means := mat.NewDense(2, 2, []float64{
		0.9, 0.8,
		0.7, 0.6,
	})

	err := Sidecar{}.PlotCriticalDifference(dir, "accuracy", means,
		[]string{"A", "B"}, []string{"D1", "D2"}, true)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "figures", "accuracy_critical_difference.json"))
	require.NoError(t, err)

	var payload struct {
		Statistic       string      `json:"statistic"`
		HigherBetter    bool        `json:"higher_better"`
		Estimators      []string    `json:"estimators"`
		AverageRanks    []float64   `json:"average_ranks"`
		RankDifferences [][]float64 `json:"rank_differences"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, "accuracy", payload.Statistic)
	assert.True(t, payload.HigherBetter)
	assert.Equal(t, []string{"A", "B"}, payload.Estimators)
	assert.Equal(t, []float64{1, 2}, payload.AverageRanks)
	assert.Equal(t, [][]float64{{0, -1}, {1, 0}}, payload.RankDifferences)
}

func TestSidecarRejectsEmptyMatrix(t *testing.T) {
	err := Sidecar{}.PlotCriticalDifference(t.TempDir(), "accuracy",
		mat.NewDense(1, 1, nil), nil, nil, true)
	assert.ErrorContains(t, err, "empty mean matrix")
}
