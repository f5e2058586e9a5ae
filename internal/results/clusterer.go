package results

import (
	"fmt"
	"math"

	"github.com/avukotic/tsbench/internal/metrics"
)

// ClustererResult holds the cluster assignments of one clusterer on one
// dataset resample.
type ClustererResult struct {
	Meta

	TrueLabels    []int
	ClusterLabels []int
	Probabilities [][]float64
	NClusters     int

	ClusteringAccuracy float64

	statsComputed bool
}

func NewClustererResult(meta Meta, yTrue, clusters []int, probabilities [][]float64) *ClustererResult {
	n := 0
	if len(probabilities) > 0 {
		n = len(probabilities[0])
	} else {
		seen := make(map[int]struct{})
		for _, c := range clusters {
			seen[c] = struct{}{}
		}
		n = len(seen)
	}
	return &ClustererResult{
		Meta:               meta,
		TrueLabels:         yTrue,
		ClusterLabels:      clusters,
		Probabilities:      probabilities,
		NClusters:          n,
		ClusteringAccuracy: math.NaN(),
	}
}

// ComputeStatistics fills in all derived statistics, keeping any that
// were already loaded. Repeat calls are no-ops.
func (r *ClustererResult) ComputeStatistics() error {
	if r.statsComputed {
		return nil
	}
	if len(r.TrueLabels) == 0 || len(r.TrueLabels) != len(r.ClusterLabels) {
		return fmt.Errorf("clusterer result %s/%s: %d true labels vs %d cluster labels",
			r.Estimator, r.Dataset, len(r.TrueLabels), len(r.ClusterLabels))
	}

	if math.IsNaN(r.ClusteringAccuracy) {
		r.ClusteringAccuracy = metrics.ClusteringAccuracy(r.TrueLabels, r.ClusterLabels)
	}

	r.statsComputed = true
	return nil
}
