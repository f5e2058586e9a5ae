package results

import (
	"fmt"
	"math"

	"github.com/avukotic/tsbench/internal/metrics"
)

// ForecasterResult holds the forecasts of one forecaster over one
// series resample.
type ForecasterResult struct {
	Meta

	TrueValues  []float64
	Predictions []float64

	MAPE float64

	statsComputed bool
}

func NewForecasterResult(meta Meta, yTrue, yPred []float64) *ForecasterResult {
	return &ForecasterResult{
		Meta:        meta,
		TrueValues:  yTrue,
		Predictions: yPred,
		MAPE:        math.NaN(),
	}
}

// ComputeStatistics fills in all derived statistics, keeping any that
// were already loaded. Repeat calls are no-ops.
func (r *ForecasterResult) ComputeStatistics() error {
	if r.statsComputed {
		return nil
	}
	if len(r.TrueValues) == 0 || len(r.TrueValues) != len(r.Predictions) {
		return fmt.Errorf("forecaster result %s/%s: %d true values vs %d predictions",
			r.Estimator, r.Dataset, len(r.TrueValues), len(r.Predictions))
	}

	if math.IsNaN(r.MAPE) {
		r.MAPE = metrics.MeanAbsolutePercentageError(r.TrueValues, r.Predictions)
	}

	r.statsComputed = true
	return nil
}
