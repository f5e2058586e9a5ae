// Package plotting materializes the inputs comparison figures are
// drawn from. Rendering happens in an external sidecar tool; this
// package writes the data payload it consumes.
package plotting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/avukotic/tsbench/internal/evaluation"
)

// Sidecar writes a critical difference payload under
// <dir>/figures/<statistic>_critical_difference.json.
type Sidecar struct{}

var _ evaluation.CriticalDifferencePlotter = Sidecar{}

type figurePayload struct {
	Statistic       string      `json:"statistic"`
	HigherBetter    bool        `json:"higher_better"`
	Estimators      []string    `json:"estimators"`
	Datasets        []string    `json:"datasets"`
	AverageRanks    []float64   `json:"average_ranks"`
	RankDifferences [][]float64 `json:"rank_differences"`
}

func (Sidecar) PlotCriticalDifference(dir, statistic string, means *mat.Dense, estimators, datasets []string, higherBetter bool) error {
	if len(estimators) == 0 || len(datasets) == 0 {
		return fmt.Errorf("empty mean matrix for %s", statistic)
	}

	avg := AverageRanks(means, higherBetter)
	payload := figurePayload{
		Statistic:       statistic,
		HigherBetter:    higherBetter,
		Estimators:      estimators,
		Datasets:        datasets,
		AverageRanks:    avg,
		RankDifferences: rankDifferences(avg),
	}

	figDir := filepath.Join(dir, "figures")
	if err := os.MkdirAll(figDir, 0755); err != nil {
		return fmt.Errorf("create figures directory: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal figure payload: %w", err)
	}
	path := filepath.Join(figDir, statistic+"_critical_difference.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write figure payload: %w", err)
	}
	return nil
}

// AverageRanks ranks the estimators within every dataset row of the
// mean matrix and averages the ranks per estimator.
func AverageRanks(means *mat.Dense, higherBetter bool) []float64 {
	rows, cols := means.Dims()
	avg := make([]float64, cols)
	for n := 0; n < rows; n++ {
		floats.Add(avg, evaluation.FractionalRanks(means.RawRowView(n), higherBetter))
	}
	floats.Scale(1/float64(rows), avg)
	return avg
}

// rankDifferences is the antisymmetric matrix of average-rank gaps
// between every estimator pair.
func rankDifferences(avg []float64) [][]float64 {
	diffs := make([][]float64, len(avg))
	for i := range avg {
		diffs[i] = make([]float64, len(avg))
		for j := range avg {
			diffs[i][j] = avg[i] - avg[j]
		}
	}
	return diffs
}
