package evaluation

import "sort"

// FractionalRanks ranks a row of values with 1 as the best rank. Ties
// receive the mean of the positions they occupy, so [0.9, 0.8, 0.9]
// with higher better ranks as [1.5, 3, 1.5].
func FractionalRanks(values []float64, higherBetter bool) []float64 {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if higherBetter {
			return values[order[a]] > values[order[b]]
		}
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, len(values))
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && values[order[j+1]] == values[order[i]] {
			j++
		}
		// Positions i..j are tied; ranks are 1-based.
		mean := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[order[k]] = mean
		}
		i = j + 1
	}
	return ranks
}
