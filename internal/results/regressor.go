package results

import (
	"fmt"
	"math"

	"github.com/avukotic/tsbench/internal/metrics"
)

// RegressorResult holds the predictions of one regressor on one dataset
// resample.
type RegressorResult struct {
	Meta

	TrueValues  []float64
	Predictions []float64

	MSE  float64
	RMSE float64
	MAE  float64

	statsComputed bool
}

func NewRegressorResult(meta Meta, yTrue, yPred []float64) *RegressorResult {
	return &RegressorResult{
		Meta:        meta,
		TrueValues:  yTrue,
		Predictions: yPred,
		MSE:         math.NaN(),
		RMSE:        math.NaN(),
		MAE:         math.NaN(),
	}
}

// ComputeStatistics fills in all derived statistics, keeping any that
// were already loaded. Repeat calls are no-ops.
func (r *RegressorResult) ComputeStatistics() error {
	if r.statsComputed {
		return nil
	}
	if len(r.TrueValues) == 0 || len(r.TrueValues) != len(r.Predictions) {
		return fmt.Errorf("regressor result %s/%s: %d true values vs %d predictions",
			r.Estimator, r.Dataset, len(r.TrueValues), len(r.Predictions))
	}

	if math.IsNaN(r.MSE) {
		r.MSE = metrics.MeanSquaredError(r.TrueValues, r.Predictions)
	}
	if math.IsNaN(r.RMSE) {
		r.RMSE = math.Sqrt(r.MSE)
	}
	if math.IsNaN(r.MAE) {
		r.MAE = metrics.MeanAbsoluteError(r.TrueValues, r.Predictions)
	}

	r.statsComputed = true
	return nil
}
