package estimators

import (
	"fmt"
	"strings"
)

// NewClassifier builds a classifier from its registry name.
func NewClassifier(name string) (Classifier, error) {
	switch name {
	case "1nn-euclidean":
		return NewKNNClassifier(1, DistanceEuclidean)
	case "1nn-dtw":
		return NewKNNClassifier(1, DistanceDTW)
	default:
		return nil, fmt.Errorf("unknown classifier %q (available: %s)",
			name, strings.Join(ClassifierNames(), ", "))
	}
}

func ClassifierNames() []string {
	return []string{"1nn-dtw", "1nn-euclidean"}
}

// NewRegressor builds a regressor from its registry name.
func NewRegressor(name string) (Regressor, error) {
	switch name {
	case "1nn-euclidean":
		return NewKNNRegressor(1, DistanceEuclidean)
	case "1nn-dtw":
		return NewKNNRegressor(1, DistanceDTW)
	default:
		return nil, fmt.Errorf("unknown regressor %q (available: %s)",
			name, strings.Join(RegressorNames(), ", "))
	}
}

func RegressorNames() []string {
	return []string{"1nn-dtw", "1nn-euclidean"}
}

// NewClusterer builds a clusterer from its registry name. Cluster
// counts are data dependent, so clusterers from the registry default
// to DefaultSOMClusters until configured.
func NewClusterer(name string) (Clusterer, error) {
	switch name {
	case "elasticsom-euclidean":
		return NewElasticSOM(DefaultSOMClusters, DistanceEuclidean)
	case "elasticsom-dtw":
		return NewElasticSOM(DefaultSOMClusters, DistanceDTW)
	default:
		return nil, fmt.Errorf("unknown clusterer %q (available: %s)",
			name, strings.Join(ClustererNames(), ", "))
	}
}

func ClustererNames() []string {
	return []string{"elasticsom-dtw", "elasticsom-euclidean"}
}

// NewForecaster builds a forecaster from its registry name.
func NewForecaster(name string) (Forecaster, error) {
	switch name {
	case "naive":
		return NewNaiveForecaster(), nil
	case "ses":
		return NewSESForecaster(DefaultSESAlpha)
	default:
		return nil, fmt.Errorf("unknown forecaster %q (available: %s)",
			name, strings.Join(ForecasterNames(), ", "))
	}
}

func ForecasterNames() []string {
	return []string{"naive", "ses"}
}
