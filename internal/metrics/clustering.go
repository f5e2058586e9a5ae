package metrics

import "math"

// ClusteringAccuracy computes classification accuracy under the best
// one-to-one mapping of cluster labels to class labels. The mapping is
// solved as a linear assignment over the contingency matrix.
func ClusteringAccuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	trueIndex := labelIndex(yTrue)
	predIndex := labelIndex(yPred)

	n := max(len(trueIndex), len(predIndex))
	contingency := make([][]float64, n)
	for i := range contingency {
		contingency[i] = make([]float64, n)
	}
	for i := range yTrue {
		contingency[trueIndex[yTrue[i]]][predIndex[yPred[i]]]++
	}

	// Maximize matched counts by minimizing (max - count).
	maxCount := 0.0
	for _, row := range contingency {
		for _, c := range row {
			maxCount = math.Max(maxCount, c)
		}
	}
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = maxCount - contingency[i][j]
		}
	}

	var matched float64
	for row, col := range minAssignment(cost) {
		matched += contingency[row][col]
	}
	return matched / float64(len(yTrue))
}

func labelIndex(labels []int) map[int]int {
	index := make(map[int]int)
	for _, label := range labels {
		if _, ok := index[label]; !ok {
			index[label] = len(index)
		}
	}
	return index
}
