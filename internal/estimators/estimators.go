// Package estimators holds the time-series estimators the experiment
// runners can fit, one small but genuine implementation family per
// estimator kind, plus name-based construction for CLI use.
package estimators

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avukotic/tsbench/internal/distances"
)

// Classifier fits labelled series and predicts class probabilities.
// Class predictions are the argmax of the probabilities.
type Classifier interface {
	Name() string
	Params() string
	Fit(x [][]float64, y []int) error
	PredictProba(x [][]float64) ([][]float64, error)
}

// TrainProber is implemented by classifiers that can estimate
// probabilities for their own training data without refitting, for
// example by leave-one-out evaluation.
type TrainProber interface {
	TrainProbabilities() ([][]float64, error)
}

// Regressor fits series with numeric targets and predicts values.
type Regressor interface {
	Name() string
	Params() string
	Fit(x [][]float64, y []float64) error
	Predict(x [][]float64) ([]float64, error)
}

// TrainPredictor is implemented by regressors that can estimate values
// for their own training data without refitting.
type TrainPredictor interface {
	TrainPredictions() ([]float64, error)
}

// Clusterer fits unlabelled series. Labels reports the cluster
// assignment of the fitted data; Predict assigns clusters to new
// series.
type Clusterer interface {
	Name() string
	Params() string
	Fit(x [][]float64) error
	Labels() []int
	Predict(x [][]float64) ([]int, error)
	NumClusters() int
}

// Forecaster fits a single series and forecasts future values.
type Forecaster interface {
	Name() string
	Params() string
	Fit(series []float64) error
	Forecast(horizon int) ([]float64, error)
}

const (
	DistanceEuclidean = "euclidean"
	DistanceDTW       = "dtw"
)

func distanceByName(name string) (func(a, b []float64) float64, error) {
	switch name {
	case DistanceEuclidean:
		return distances.Euclidean, nil
	case DistanceDTW:
		return distances.DTW, nil
	default:
		return nil, fmt.Errorf("unknown distance %q", name)
	}
}

// flowParams serializes an estimator's parameter struct to a single
// line for the result file parameter row.
func flowParams(v any) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(string(data), "\n", " "))
}
