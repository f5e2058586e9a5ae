// Package evaluation aggregates result records from multiple
// estimators over multiple datasets and resamples into comparison
// tables: per-resample statistic tables, dataset-mean matrices,
// fractional-rank matrices and a summary file.
package evaluation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/avukotic/tsbench/internal/results"
)

// Options configure an evaluation run.
type Options struct {
	// SavePath is the directory evaluation output is written under.
	// The run's files live in SavePath/EvalName.
	SavePath string
	// EvalName names the run and its output directory.
	EvalName string
	// ErrorOnMissing selects the strict missing-results policy: fail
	// with every missing combination enumerated instead of narrowing
	// the evaluation to datasets with complete results.
	ErrorOnMissing bool
	// Plotter, when set, renders a comparison figure per statistic and
	// split. Figure failures are logged and never abort the run.
	Plotter CriticalDifferencePlotter
}

func (o Options) validate() error {
	if o.SavePath == "" {
		return fmt.Errorf("save path is required")
	}
	if o.EvalName == "" {
		return fmt.Errorf("evaluation name is required")
	}
	return nil
}

// StatisticResult holds the in-memory matrices for one statistic on
// one split. Rows are datasets and columns are estimators, both in the
// sorted order shared by every table of the run.
type StatisticResult struct {
	Key     string
	Display string
	Split   string
	Means   *mat.Dense
	Ranks   *mat.Dense
}

// Evaluation is the outcome of a run: the names the tables were built
// over after reconciliation, and every materialized statistic in
// output order.
type Evaluation struct {
	Estimators []string
	Datasets   []string
	Resamples  []int
	Statistics []StatisticResult
}

// Evaluate aggregates records into comparison tables for the given
// statistics and writes them under SavePath/EvalName. Nothing is
// written until the records pass the completeness policy, so a strict
// failure leaves the filesystem untouched.
func Evaluate(records []Result, statistics []Statistic, opts Options) (*Evaluation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no results to evaluate")
	}
	if len(statistics) == 0 {
		return nil, fmt.Errorf("no statistics to evaluate")
	}

	idx := buildIndex(records)
	u, p, err := checkCompleteness(idx)
	if err != nil {
		return nil, err
	}
	if err := reconcile(u, p, opts.ErrorOnMissing); err != nil {
		return nil, err
	}

	slog.Info("evaluating results",
		"eval_name", opts.EvalName,
		"estimators", u.estimators,
		"datasets", len(u.datasets),
		"resamples", u.resamples,
		"splits", u.splits(),
	)

	evalDir := filepath.Join(opts.SavePath, opts.EvalName)
	if err := os.MkdirAll(evalDir, 0755); err != nil {
		return nil, fmt.Errorf("create evaluation directory: %w", err)
	}

	ev := &Evaluation{
		Estimators: u.estimators,
		Datasets:   u.datasets,
		Resamples:  u.resamples,
	}
	for _, s := range statistics {
		statDir := filepath.Join(evalDir, s.Key)
		for _, split := range u.splits() {
			means, ranks, err := materializeStatistic(idx, u, s, split, statDir, opts.Plotter)
			if err != nil {
				return nil, err
			}
			ev.Statistics = append(ev.Statistics, StatisticResult{
				Key:     s.Key,
				Display: s.Display,
				Split:   split,
				Means:   means,
				Ranks:   ranks,
			})
		}
	}

	if err := writeSummary(ev.Statistics, u.estimators, evalDir, opts.EvalName); err != nil {
		return nil, err
	}
	return ev, nil
}

// EvaluateClassifiers evaluates classification results over the full
// classifier statistic registry.
func EvaluateClassifiers(rs []*results.ClassifierResult, opts Options) (*Evaluation, error) {
	records := make([]Result, len(rs))
	for i, r := range rs {
		records[i] = r
	}
	return Evaluate(records, ClassifierStatistics(), opts)
}

// EvaluateRegressors evaluates regression results over the full
// regressor statistic registry.
func EvaluateRegressors(rs []*results.RegressorResult, opts Options) (*Evaluation, error) {
	records := make([]Result, len(rs))
	for i, r := range rs {
		records[i] = r
	}
	return Evaluate(records, RegressorStatistics(), opts)
}

// EvaluateClusterers evaluates clustering results over the full
// clusterer statistic registry.
func EvaluateClusterers(rs []*results.ClustererResult, opts Options) (*Evaluation, error) {
	records := make([]Result, len(rs))
	for i, r := range rs {
		records[i] = r
	}
	return Evaluate(records, ClustererStatistics(), opts)
}

// EvaluateForecasters evaluates forecasting results over the full
// forecaster statistic registry.
func EvaluateForecasters(rs []*results.ForecasterResult, opts Options) (*Evaluation, error) {
	records := make([]Result, len(rs))
	for i, r := range rs {
		records[i] = r
	}
	return Evaluate(records, ForecasterStatistics(), opts)
}
