package datasets

import (
	"fmt"
	"math/rand"
	"sort"
)

// Resample pools both splits and redraws a split with the original
// sizes. The resample id seeds the shuffle, so a given id always
// produces the same split. Id 0 is by convention the split as loaded
// from file; callers skip resampling for it.
func Resample(train, test *Dataset, resampleID int) (*Dataset, *Dataset) {
	pool := poolOf(train, test)
	rng := rand.New(rand.NewSource(int64(resampleID)))
	order := rng.Perm(len(pool.Series))

	newTrain := &Dataset{Name: train.Name}
	newTest := &Dataset{Name: test.Name}
	for i, idx := range order {
		if i < len(train.Series) {
			pool.appendTo(newTrain, idx)
		} else {
			pool.appendTo(newTest, idx)
		}
	}
	return newTrain, newTest
}

// StratifiedResample redraws the split keeping each class's train and
// test counts, for classification and clustering problems. Classes are
// processed in sorted label order and the shuffle is seeded by the
// resample id, so the result is deterministic.
func StratifiedResample(train, test *Dataset, resampleID int) (*Dataset, *Dataset, error) {
	trainCounts := make(map[string]int)
	for _, label := range train.Labels {
		trainCounts[label]++
	}
	for _, label := range test.Labels {
		if _, ok := trainCounts[label]; !ok {
			return nil, nil, fmt.Errorf("label %q appears only in the test split", label)
		}
	}

	pool := poolOf(train, test)
	byLabel := make(map[string][]int)
	for i, label := range pool.Labels {
		byLabel[label] = append(byLabel[label], i)
	}
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rng := rand.New(rand.NewSource(int64(resampleID)))
	newTrain := &Dataset{Name: train.Name}
	newTest := &Dataset{Name: test.Name}
	for _, label := range labels {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(a, b int) {
			indices[a], indices[b] = indices[b], indices[a]
		})
		for i, idx := range indices {
			if i < trainCounts[label] {
				pool.appendTo(newTrain, idx)
			} else {
				pool.appendTo(newTest, idx)
			}
		}
	}
	return newTrain, newTest, nil
}

func poolOf(train, test *Dataset) *Dataset {
	pool := &Dataset{
		Series: make([][]float64, 0, len(train.Series)+len(test.Series)),
		Labels: make([]string, 0, len(train.Labels)+len(test.Labels)),
	}
	pool.Series = append(pool.Series, train.Series...)
	pool.Series = append(pool.Series, test.Series...)
	pool.Labels = append(pool.Labels, train.Labels...)
	pool.Labels = append(pool.Labels, test.Labels...)
	return pool
}

func (d *Dataset) appendTo(dst *Dataset, idx int) {
	dst.Series = append(dst.Series, d.Series[idx])
	if len(d.Labels) > 0 {
		dst.Labels = append(dst.Labels, d.Labels[idx])
	}
}
