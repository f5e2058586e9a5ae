// Package results holds the per-run result records produced by
// experiments and consumed by the evaluation pipeline, together with
// the fixed on-disk result file format.
package results

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avukotic/tsbench/internal/timeunit"
)

// Kind identifies the estimator family a result belongs to.
type Kind string

const (
	KindClassifier Kind = "classifier"
	KindRegressor  Kind = "regressor"
	KindClusterer  Kind = "clusterer"
	KindForecaster Kind = "forecaster"
)

const DefaultParameterInfo = "No parameter info"

// Meta carries the identity and bookkeeping fields shared by every
// result kind: which estimator produced it, on which dataset, for
// which split and resample, and in which unit its timings are stored.
type Meta struct {
	Estimator   string
	Dataset     string
	Split       string
	Resample    int
	HasResample bool
	Unit        timeunit.Unit
	Params      string
	Comment     string

	FitTime     float64
	PredictTime float64
}

func (m *Meta) EstimatorName() string { return m.Estimator }
func (m *Meta) DatasetName() string { return m.Dataset }
func (m *Meta) SplitLabel() string { return m.Split }
func (m *Meta) ResampleID() (int, bool) { return m.Resample, m.HasResample }
func (m *Meta) TimeUnit() timeunit.Unit { return m.Unit }

// FilePath returns the standard location of a result file:
// <dir>/<estimator>/Predictions/<dataset>/<split>Resample<id>.csv with
// the split lower-cased.
func FilePath(dir, estimator, dataset, split string, resample int) string {
	name := fmt.Sprintf("%sResample%d.csv", strings.ToLower(split), resample)
	return filepath.Join(dir, estimator, "Predictions", dataset, name)
}
