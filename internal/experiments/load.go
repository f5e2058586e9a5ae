package experiments

import (
	"fmt"

	"github.com/avukotic/tsbench/internal/datasets"
	"github.com/avukotic/tsbench/internal/estimators"
)

// LoadAndRunClassification loads the named problem from dataDir,
// applies the stratified resample for the configured resample id and
// runs the experiment. Resample 0 keeps the published train/test
// split.
func LoadAndRunClassification(dataDir string, clf estimators.Classifier, cfg Config) error {
	train, test, err := loadResampled(dataDir, cfg, true)
	if err != nil {
		return err
	}
	return RunClassification(train, test, clf, cfg)
}

// LoadAndRunRegression is LoadAndRunClassification for regressors.
// Regression problems have no class structure, so resamples shuffle
// the instance pool without stratification.
func LoadAndRunRegression(dataDir string, reg estimators.Regressor, cfg Config) error {
	train, test, err := loadResampled(dataDir, cfg, false)
	if err != nil {
		return err
	}
	return RunRegression(train, test, reg, cfg)
}

// LoadAndRunClustering loads the named problem and runs a clustering
// experiment on it, resampling with stratification like
// classification.
func LoadAndRunClustering(dataDir string, cl estimators.Clusterer, cfg Config) error {
	train, test, err := loadResampled(dataDir, cfg, true)
	if err != nil {
		return err
	}
	return RunClustering(train, test, cl, cfg)
}

// LoadAndRunForecasting loads the named problem, which must hold a
// single series per split, and forecasts the test split. Forecasts
// always run against the published split; the resample id only names
// the output file.
func LoadAndRunForecasting(dataDir string, f estimators.Forecaster, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	train, test, err := datasets.LoadProblem(dataDir, cfg.DatasetName)
	if err != nil {
		return err
	}
	trainSeries, err := singleSeries(train)
	if err != nil {
		return err
	}
	testSeries, err := singleSeries(test)
	if err != nil {
		return err
	}
	return RunForecasting(trainSeries, testSeries, f, cfg)
}

func loadResampled(dataDir string, cfg Config, stratified bool) (*datasets.Dataset, *datasets.Dataset, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	train, test, err := datasets.LoadProblem(dataDir, cfg.DatasetName)
	if err != nil {
		return nil, nil, err
	}
	if cfg.ResampleID == 0 {
		return train, test, nil
	}
	if stratified {
		return datasets.StratifiedResample(train, test, cfg.ResampleID)
	}
	train, test = datasets.Resample(train, test, cfg.ResampleID)
	return train, test, nil
}

func singleSeries(d *datasets.Dataset) ([]float64, error) {
	if len(d.Series) != 1 {
		return nil, fmt.Errorf("forecasting problems need a single series per split, %s has %d", d.Name, len(d.Series))
	}
	return d.Series[0], nil
}
