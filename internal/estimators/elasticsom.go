package estimators

import (
	"fmt"
	"math"

	"github.com/avukotic/tsbench/internal/distances"
)

const (
	DefaultSOMClusters   = 8
	DefaultSOMSigma      = 1.0
	DefaultSOMLearning   = 0.5
	DefaultSOMIterations = 50
)

// ElasticSOM is a self-organizing-map clusterer over time series with
// a 1 x k neuron grid. With the dtw distance, neuron weights are
// updated elastically along the warping alignment path instead of
// pointwise, so neurons can absorb series that are shifted in time.
// Neurons are seeded from the first k training series and iterations
// sweep the data in order, so fitting is deterministic.
type ElasticSOM struct {
	NClusters    int
	Distance     string
	Sigma        float64
	LearningRate float64
	// Iterations per timepoint; the total update count is Iterations
	// times the series length.
	Iterations int

	distance func(a, b []float64) float64
	elastic  bool
	weights  [][]float64
	labels   []int
}

func NewElasticSOM(nClusters int, distance string) (*ElasticSOM, error) {
	if nClusters < 1 {
		return nil, fmt.Errorf("n_clusters must be at least 1, got %d", nClusters)
	}
	dist, err := distanceByName(distance)
	if err != nil {
		return nil, err
	}
	return &ElasticSOM{
		NClusters:    nClusters,
		Distance:     distance,
		Sigma:        DefaultSOMSigma,
		LearningRate: DefaultSOMLearning,
		Iterations:   DefaultSOMIterations,
		distance:     dist,
		elastic:      distance == DistanceDTW,
	}, nil
}

func (s *ElasticSOM) Name() string {
	return fmt.Sprintf("elasticsom-%s", s.Distance)
}

func (s *ElasticSOM) Params() string {
	return flowParams(struct {
		NClusters    int     `yaml:"n_clusters"`
		Distance     string  `yaml:"distance"`
		Sigma        float64 `yaml:"sigma"`
		LearningRate float64 `yaml:"learning_rate"`
		Iterations   int     `yaml:"iterations"`
	}{s.NClusters, s.Distance, s.Sigma, s.LearningRate, s.Iterations})
}

func (s *ElasticSOM) NumClusters() int { return s.NClusters }

// Labels returns the cluster assignment of the fitted training data.
func (s *ElasticSOM) Labels() []int { return s.labels }

func (s *ElasticSOM) Fit(x [][]float64) error {
	if len(x) < s.NClusters {
		return fmt.Errorf("need at least %d series to fit %d clusters, got %d",
			s.NClusters, s.NClusters, len(x))
	}

	s.weights = make([][]float64, s.NClusters)
	for c := range s.weights {
		s.weights[c] = append([]float64(nil), x[c]...)
	}

	total := s.Iterations * len(x[0])
	for t := 0; t < total; t++ {
		series := x[t%len(x)]
		win := s.winner(series)
		eta := asymptoticDecay(s.LearningRate, t, total)
		sig := asymptoticDecay(s.Sigma, t, total)

		for c := range s.weights {
			diff := float64(c - win)
			g := math.Exp(-diff*diff/(2*sig*sig)) * eta
			if s.elastic {
				s.weights[c] = elasticUpdate(series, s.weights[c], g)
			} else {
				blendInto(s.weights[c], series, g)
			}
		}
	}

	s.labels = make([]int, len(x))
	for i, series := range x {
		s.labels[i] = s.winner(series)
	}
	return nil
}

func (s *ElasticSOM) Predict(x [][]float64) ([]int, error) {
	if s.weights == nil {
		return nil, fmt.Errorf("clusterer is not fitted")
	}
	labels := make([]int, len(x))
	for i, series := range x {
		labels[i] = s.winner(series)
	}
	return labels, nil
}

func (s *ElasticSOM) winner(series []float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, w := range s.weights {
		if d := s.distance(series, w); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// asymptoticDecay shrinks a dynamic parameter over the run:
// value / (1 + t/(total/2)).
func asymptoticDecay(value float64, t, total int) float64 {
	return value / (1 + float64(t)/(float64(total)/2))
}

// elasticUpdate pulls neuron weights y towards series x with strength
// w in [0, 1]. Every alignment-path pair contributes its interpolated
// value at an interpolated coordinate; coordinates multiple pairs map
// to are averaged and coordinates no pair maps to inherit their left
// neighbour.
func elasticUpdate(x, y []float64, w float64) []float64 {
	path, _ := distances.DTWAlignmentPath(x, y)

	sums := make([]float64, len(x))
	counts := make([]int, len(x))
	for _, p := range path {
		col := int(math.RoundToEven(float64(p[0])*w + float64(p[1])*(1-w)))
		if col < 0 || col >= len(x) {
			continue
		}
		sums[col] += x[p[0]]*w + y[p[1]]*(1-w)
		counts[col]++
	}

	out := make([]float64, len(x))
	for j := range out {
		if counts[j] > 0 {
			out[j] = sums[j] / float64(counts[j])
		} else if j > 0 {
			out[j] = out[j-1]
		}
	}
	return out
}

// blendInto is the classic pointwise SOM update for lockstep distances.
func blendInto(w, x []float64, g float64) {
	n := min(len(w), len(x))
	for j := 0; j < n; j++ {
		w[j] += g * (x[j] - w[j])
	}
}
