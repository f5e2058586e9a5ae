package evaluation

import (
	"github.com/avukotic/tsbench/internal/results"
	"github.com/avukotic/tsbench/internal/timeunit"
)

// Result is the view of one experiment outcome the evaluation pipeline
// needs: identity (estimator, dataset, split, resample), the unit its
// timings are stored in, and a lazy statistics trigger.
type Result interface {
	EstimatorName() string
	DatasetName() string
	SplitLabel() string
	ResampleID() (int, bool)
	TimeUnit() timeunit.Unit
	ComputeStatistics() error
}

// Statistic describes one evaluated statistic: the key used for file
// and directory names, the display name used in summary row labels,
// its directionality, whether it is a timing value (normalized to
// milliseconds before averaging), and an accessor resolving the value
// on a record. Accessors are bound per result kind at setup so no
// name-based field lookup happens during aggregation.
type Statistic struct {
	Key          string
	Display      string
	HigherBetter bool
	Timing       bool
	Value        func(Result) float64
}

// ClassifierStatistics is the statistic registry for classification
// results.
func ClassifierStatistics() []Statistic {
	return []Statistic{
		{Key: "accuracy", Display: "Accuracy", HigherBetter: true,
			Value: func(r Result) float64 { return r.(*results.ClassifierResult).Accuracy }},
		{Key: "balanced_accuracy", Display: "BalancedAccuracy", HigherBetter: true,
			Value: func(r Result) float64 { return r.(*results.ClassifierResult).BalancedAccuracy }},
		{Key: "nll", Display: "NLL",
			Value: func(r Result) float64 { return r.(*results.ClassifierResult).NegLogLikelihood }},
		{Key: "fit_time", Display: "FitTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.ClassifierResult).FitTime }},
		{Key: "predict_time", Display: "PredictTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.ClassifierResult).PredictTime }},
	}
}

// RegressorStatistics is the statistic registry for regression results.
func RegressorStatistics() []Statistic {
	return []Statistic{
		{Key: "mse", Display: "MSE",
			Value: func(r Result) float64 { return r.(*results.RegressorResult).MSE }},
		{Key: "rmse", Display: "RMSE",
			Value: func(r Result) float64 { return r.(*results.RegressorResult).RMSE }},
		{Key: "mae", Display: "MAE",
			Value: func(r Result) float64 { return r.(*results.RegressorResult).MAE }},
		{Key: "fit_time", Display: "FitTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.RegressorResult).FitTime }},
		{Key: "predict_time", Display: "PredictTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.RegressorResult).PredictTime }},
	}
}

// ClustererStatistics is the statistic registry for clustering results.
func ClustererStatistics() []Statistic {
	return []Statistic{
		{Key: "clustering_accuracy", Display: "ClusteringAccuracy", HigherBetter: true,
			Value: func(r Result) float64 { return r.(*results.ClustererResult).ClusteringAccuracy }},
		{Key: "fit_time", Display: "FitTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.ClustererResult).FitTime }},
		{Key: "predict_time", Display: "PredictTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.ClustererResult).PredictTime }},
	}
}

// ForecasterStatistics is the statistic registry for forecasting
// results.
func ForecasterStatistics() []Statistic {
	return []Statistic{
		{Key: "mape", Display: "MAPE",
			Value: func(r Result) float64 { return r.(*results.ForecasterResult).MAPE }},
		{Key: "fit_time", Display: "FitTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.ForecasterResult).FitTime }},
		{Key: "predict_time", Display: "PredictTime", Timing: true,
			Value: func(r Result) float64 { return r.(*results.ForecasterResult).PredictTime }},
	}
}
