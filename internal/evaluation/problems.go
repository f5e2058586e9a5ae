package evaluation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/avukotic/tsbench/internal/results"
)

// Problem locates result files laid out in the standard
// <estimator>/Predictions/<dataset>/<split>Resample<id>.csv structure
// under LoadPath, one file per estimator, dataset, resample and split
// combination.
type Problem struct {
	LoadPath   string
	Estimators []string
	Datasets   []string
	// Resamples lists the resample ids to load. Empty loads resample 0
	// only.
	Resamples []int
	// Splits selects which splits to load. Empty picks the kind's
	// convention: test for classifiers, regressors and forecasters,
	// test and train for clusterers.
	Splits []string
}

func (p Problem) validate() error {
	if p.LoadPath == "" {
		return fmt.Errorf("load path is required")
	}
	if len(p.Estimators) == 0 {
		return fmt.Errorf("at least one estimator is required")
	}
	if len(p.Datasets) == 0 {
		return fmt.Errorf("at least one dataset is required")
	}
	for _, split := range p.Splits {
		s := strings.ToLower(split)
		if s != splitTrain && s != splitTest {
			return fmt.Errorf("unknown split %q", split)
		}
	}
	return nil
}

func (p Problem) resamples() []int {
	if len(p.Resamples) == 0 {
		return []int{0}
	}
	return p.Resamples
}

func (p Problem) splits(defaults []string) []string {
	if len(p.Splits) == 0 {
		return defaults
	}
	out := make([]string, len(p.Splits))
	for i, split := range p.Splits {
		out[i] = strings.ToLower(split)
	}
	return out
}

// loadProblemFiles walks each combination and hands the path to load.
// In strict mode the first failed load aborts; otherwise failures are
// logged and skipped so reconciliation decides what survives.
func loadProblemFiles(p Problem, splits []string, errorOnMissing bool, load func(path string) error) error {
	for _, estimator := range p.Estimators {
		for _, dataset := range p.Datasets {
			for _, resample := range p.resamples() {
				for _, split := range splits {
					path := results.FilePath(p.LoadPath, estimator, dataset, split, resample)
					if err := load(path); err != nil {
						if errorOnMissing {
							return fmt.Errorf("load result file: %w", err)
						}
						slog.Warn("skipping unreadable result file", "path", path, "error", err)
					}
				}
			}
		}
	}
	return nil
}

// EvaluateClassifiersByProblem loads classification result files from
// the standard structure and evaluates them.
func EvaluateClassifiersByProblem(p Problem, opts Options) (*Evaluation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	var rs []*results.ClassifierResult
	err := loadProblemFiles(p, p.splits([]string{splitTest}), opts.ErrorOnMissing, func(path string) error {
		r, err := results.LoadClassifierResult(path)
		if err != nil {
			return err
		}
		rs = append(rs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return EvaluateClassifiers(rs, opts)
}

// EvaluateRegressorsByProblem loads regression result files from the
// standard structure and evaluates them.
func EvaluateRegressorsByProblem(p Problem, opts Options) (*Evaluation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	var rs []*results.RegressorResult
	err := loadProblemFiles(p, p.splits([]string{splitTest}), opts.ErrorOnMissing, func(path string) error {
		r, err := results.LoadRegressorResult(path)
		if err != nil {
			return err
		}
		rs = append(rs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return EvaluateRegressors(rs, opts)
}

// EvaluateClusterersByProblem loads clustering result files from the
// standard structure and evaluates them. Clusterers predict cluster
// assignments for the data they were fit on, so train results are part
// of the default split set.
func EvaluateClusterersByProblem(p Problem, opts Options) (*Evaluation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	var rs []*results.ClustererResult
	err := loadProblemFiles(p, p.splits([]string{splitTest, splitTrain}), opts.ErrorOnMissing, func(path string) error {
		r, err := results.LoadClustererResult(path)
		if err != nil {
			return err
		}
		rs = append(rs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return EvaluateClusterers(rs, opts)
}

// EvaluateForecastersByProblem loads forecasting result files from the
// standard structure and evaluates them.
func EvaluateForecastersByProblem(p Problem, opts Options) (*Evaluation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	var rs []*results.ForecasterResult
	err := loadProblemFiles(p, p.splits([]string{splitTest}), opts.ErrorOnMissing, func(path string) error {
		r, err := results.LoadForecasterResult(path)
		if err != nil {
			return err
		}
		rs = append(rs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return EvaluateForecasters(rs, opts)
}
