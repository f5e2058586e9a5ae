package estimators

import (
	"fmt"
)

const DefaultNeighbors = 1

// KNNClassifier is a k-nearest-neighbour classifier over whole series
// with a pluggable distance. Votes are split evenly between the k
// nearest training series; distance ties resolve to the earlier
// training index.
type KNNClassifier struct {
	K        int
	Distance string

	distance func(a, b []float64) float64
	xTrain   [][]float64
	yTrain   []int
	nClasses int
}

func NewKNNClassifier(k int, distance string) (*KNNClassifier, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", k)
	}
	dist, err := distanceByName(distance)
	if err != nil {
		return nil, err
	}
	return &KNNClassifier{K: k, Distance: distance, distance: dist}, nil
}

func (c *KNNClassifier) Name() string {
	return fmt.Sprintf("%dnn-%s", c.K, c.Distance)
}

func (c *KNNClassifier) Params() string {
	return flowParams(struct {
		K        int    `yaml:"k"`
		Distance string `yaml:"distance"`
	}{c.K, c.Distance})
}

func (c *KNNClassifier) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("fit needs matching series and labels, got %d and %d", len(x), len(y))
	}
	if c.K > len(x) {
		return fmt.Errorf("k=%d exceeds the %d training series", c.K, len(x))
	}
	c.xTrain = x
	c.yTrain = y
	c.nClasses = 0
	for _, label := range y {
		if label < 0 {
			return fmt.Errorf("class labels must be non-negative, got %d", label)
		}
		if label+1 > c.nClasses {
			c.nClasses = label + 1
		}
	}
	return nil
}

func (c *KNNClassifier) PredictProba(x [][]float64) ([][]float64, error) {
	if c.xTrain == nil {
		return nil, fmt.Errorf("classifier is not fitted")
	}
	probs := make([][]float64, len(x))
	for i, series := range x {
		probs[i] = c.vote(series, -1)
	}
	return probs, nil
}

// TrainProbabilities estimates probabilities for the training series by
// leave-one-out: each series votes among its neighbours except itself.
func (c *KNNClassifier) TrainProbabilities() ([][]float64, error) {
	if c.xTrain == nil {
		return nil, fmt.Errorf("classifier is not fitted")
	}
	if len(c.xTrain) < 2 {
		return nil, fmt.Errorf("leave-one-out needs at least 2 training series")
	}
	probs := make([][]float64, len(c.xTrain))
	for i, series := range c.xTrain {
		probs[i] = c.vote(series, i)
	}
	return probs, nil
}

func (c *KNNClassifier) vote(series []float64, exclude int) []float64 {
	neighbors := nearest(c.xTrain, series, c.K, exclude, c.distance)
	probs := make([]float64, c.nClasses)
	for _, n := range neighbors {
		probs[c.yTrain[n]] += 1.0 / float64(len(neighbors))
	}
	return probs
}

// KNNRegressor predicts the mean target of the k nearest training
// series.
type KNNRegressor struct {
	K        int
	Distance string

	distance func(a, b []float64) float64
	xTrain   [][]float64
	yTrain   []float64
}

func NewKNNRegressor(k int, distance string) (*KNNRegressor, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", k)
	}
	dist, err := distanceByName(distance)
	if err != nil {
		return nil, err
	}
	return &KNNRegressor{K: k, Distance: distance, distance: dist}, nil
}

func (r *KNNRegressor) Name() string {
	return fmt.Sprintf("%dnn-%s", r.K, r.Distance)
}

func (r *KNNRegressor) Params() string {
	return flowParams(struct {
		K        int    `yaml:"k"`
		Distance string `yaml:"distance"`
	}{r.K, r.Distance})
}

func (r *KNNRegressor) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("fit needs matching series and targets, got %d and %d", len(x), len(y))
	}
	if r.K > len(x) {
		return fmt.Errorf("k=%d exceeds the %d training series", r.K, len(x))
	}
	r.xTrain = x
	r.yTrain = y
	return nil
}

func (r *KNNRegressor) Predict(x [][]float64) ([]float64, error) {
	if r.xTrain == nil {
		return nil, fmt.Errorf("regressor is not fitted")
	}
	preds := make([]float64, len(x))
	for i, series := range x {
		preds[i] = r.estimate(series, -1)
	}
	return preds, nil
}

// TrainPredictions estimates targets for the training series by
// leave-one-out.
func (r *KNNRegressor) TrainPredictions() ([]float64, error) {
	if r.xTrain == nil {
		return nil, fmt.Errorf("regressor is not fitted")
	}
	if len(r.xTrain) < 2 {
		return nil, fmt.Errorf("leave-one-out needs at least 2 training series")
	}
	preds := make([]float64, len(r.xTrain))
	for i, series := range r.xTrain {
		preds[i] = r.estimate(series, i)
	}
	return preds, nil
}

func (r *KNNRegressor) estimate(series []float64, exclude int) float64 {
	neighbors := nearest(r.xTrain, series, r.K, exclude, r.distance)
	var sum float64
	for _, n := range neighbors {
		sum += r.yTrain[n]
	}
	return sum / float64(len(neighbors))
}

// nearest returns the indices of the k series in pool closest to the
// query, nearest first, skipping the excluded index. k is capped at
// the number of candidates.
func nearest(pool [][]float64, query []float64, k, exclude int, distance func(a, b []float64) float64) []int {
	type candidate struct {
		index int
		dist  float64
	}

	best := make([]candidate, 0, k)
	for i, series := range pool {
		if i == exclude {
			continue
		}
		d := distance(query, series)
		if len(best) < k {
			best = append(best, candidate{i, d})
		} else if d < best[len(best)-1].dist {
			best[len(best)-1] = candidate{i, d}
		} else {
			continue
		}
		// Bubble the inserted candidate into place.
		for j := len(best) - 1; j > 0 && best[j].dist < best[j-1].dist; j-- {
			best[j], best[j-1] = best[j-1], best[j]
		}
	}

	indices := make([]int, len(best))
	for i, c := range best {
		indices[i] = c.index
	}
	return indices
}
