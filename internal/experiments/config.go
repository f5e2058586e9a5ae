package experiments

import (
	"fmt"
	"os"

	"github.com/avukotic/tsbench/internal/results"
	"github.com/avukotic/tsbench/internal/timeunit"
)

const (
	splitTrain = "train"
	splitTest  = "test"
)

// Config selects what a single experiment run produces and where.
type Config struct {
	// ResultsPath is the root directory result files are written
	// under, in <root>/<estimator>/Predictions/<dataset>/ layout.
	ResultsPath string
	// EstimatorName overrides the estimator's own name in file paths
	// and metadata when set.
	EstimatorName string
	DatasetName   string
	ResampleID    int

	BuildTestFile  bool
	BuildTrainFile bool
	// Overwrite rebuilds result files that already exist.
	Overwrite bool
}

func (c Config) validate() error {
	if c.ResultsPath == "" {
		return fmt.Errorf("results path is required")
	}
	if c.DatasetName == "" {
		return fmt.Errorf("dataset name is required")
	}
	if !c.BuildTestFile && !c.BuildTrainFile {
		return fmt.Errorf("nothing to build: enable the test file, the train file, or both")
	}
	return nil
}

func (c Config) estimatorName(fallback string) string {
	if c.EstimatorName != "" {
		return c.EstimatorName
	}
	return fallback
}

// resolveTargets drops result files that already exist unless
// Overwrite is set. Both false means the run can be skipped outright.
func (c Config) resolveTargets(estimator string) (buildTest, buildTrain bool) {
	buildTest, buildTrain = c.BuildTestFile, c.BuildTrainFile
	if c.Overwrite {
		return buildTest, buildTrain
	}
	if buildTest {
		if _, err := os.Stat(c.resultPath(estimator, splitTest)); err == nil {
			buildTest = false
		}
	}
	if buildTrain {
		if _, err := os.Stat(c.resultPath(estimator, splitTrain)); err == nil {
			buildTrain = false
		}
	}
	return buildTest, buildTrain
}

func (c Config) resultPath(estimator, split string) string {
	return results.FilePath(c.ResultsPath, estimator, c.DatasetName, split, c.ResampleID)
}

func (c Config) meta(estimator, split, params, comment string, fitMillis, predictMillis float64) results.Meta {
	return results.Meta{
		Estimator:   estimator,
		Dataset:     c.DatasetName,
		Split:       split,
		Resample:    c.ResampleID,
		HasResample: true,
		Unit:        timeunit.Milliseconds,
		Params:      params,
		Comment:     comment,
		FitTime:     fitMillis,
		PredictTime: predictMillis,
	}
}
