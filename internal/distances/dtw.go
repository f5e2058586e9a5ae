package distances

import "math"

// DTW computes the dynamic time warping distance between two series:
// the sum of squared pointwise differences along the optimal warping
// path.
func DTW(a, b []float64) float64 {
	cost := dtwCostMatrix(a, b)
	return cost[len(a)-1][len(b)-1]
}

// DTWAlignmentPath returns the optimal warping path as (i, j) index
// pairs from (0, 0) to (len(a)-1, len(b)-1), plus the path cost.
func DTWAlignmentPath(a, b []float64) ([][2]int, float64) {
	cost := dtwCostMatrix(a, b)

	i, j := len(a)-1, len(b)-1
	path := [][2]int{{i, j}}
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			diag, up, left := cost[i-1][j-1], cost[i-1][j], cost[i][j-1]
			if diag <= up && diag <= left {
				i--
				j--
			} else if up <= left {
				i--
			} else {
				j--
			}
		}
		path = append(path, [2]int{i, j})
	}

	// Reverse into forward order.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, cost[len(a)-1][len(b)-1]
}

func dtwCostMatrix(a, b []float64) [][]float64 {
	n, m := len(a), len(b)
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, m)
		for j := range cost[i] {
			cost[i][j] = math.Inf(1)
		}
	}

	diff := a[0] - b[0]
	cost[0][0] = diff * diff
	for i := 1; i < n; i++ {
		diff = a[i] - b[0]
		cost[i][0] = cost[i-1][0] + diff*diff
	}
	for j := 1; j < m; j++ {
		diff = a[0] - b[j]
		cost[0][j] = cost[0][j-1] + diff*diff
	}
	for i := 1; i < n; i++ {
		for j := 1; j < m; j++ {
			diff = a[i] - b[j]
			cost[i][j] = diff*diff + min(cost[i-1][j-1], cost[i-1][j], cost[i][j-1])
		}
	}
	return cost
}
