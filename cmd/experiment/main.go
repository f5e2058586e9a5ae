package main

import (
	"log/slog"
	"os"

	"github.com/avukotic/tsbench/internal/estimators"
	"github.com/avukotic/tsbench/internal/experiments"
	"github.com/avukotic/tsbench/internal/results"
	"github.com/avukotic/tsbench/pkg/config/env"
)

func main() {
	cfg := parseFlags()

	if err := env.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to load environment", "error", err)
		os.Exit(1)
	}
	settings, err := env.LoadSettings()
	if err != nil {
		slog.Error("Failed to read settings", "error", err)
		os.Exit(1)
	}
	cfg.applyDefaults(settings)

	if cfg.Problem == "" || cfg.Estimator == "" {
		slog.Error("Flags -problem and -estimator are required")
		os.Exit(1)
	}

	runCfg := experiments.Config{
		ResultsPath:    cfg.ResultsPath,
		DatasetName:    cfg.Problem,
		ResampleID:     cfg.Resample,
		BuildTestFile:  cfg.TestFile,
		BuildTrainFile: cfg.TrainFile,
		Overwrite:      cfg.Overwrite,
	}

	var runErr error
	switch results.Kind(cfg.Kind) {
	case results.KindClassifier:
		clf, err := estimators.NewClassifier(cfg.Estimator)
		if err != nil {
			fatal(err)
		}
		runErr = experiments.LoadAndRunClassification(cfg.DataDir, clf, runCfg)

	case results.KindRegressor:
		reg, err := estimators.NewRegressor(cfg.Estimator)
		if err != nil {
			fatal(err)
		}
		runErr = experiments.LoadAndRunRegression(cfg.DataDir, reg, runCfg)

	case results.KindClusterer:
		cl, err := estimators.NewClusterer(cfg.Estimator)
		if err != nil {
			fatal(err)
		}
		runErr = experiments.LoadAndRunClustering(cfg.DataDir, cl, runCfg)

	case results.KindForecaster:
		f, err := estimators.NewForecaster(cfg.Estimator)
		if err != nil {
			fatal(err)
		}
		runErr = experiments.LoadAndRunForecasting(cfg.DataDir, f, runCfg)

	default:
		slog.Error("Unknown kind", "kind", cfg.Kind)
		os.Exit(1)
	}

	if runErr != nil {
		slog.Error("Experiment failed", "error", runErr)
		os.Exit(1)
	}
	slog.Info("Experiment complete",
		"estimator", cfg.Estimator, "problem", cfg.Problem, "resample", cfg.Resample)
}

func fatal(err error) {
	slog.Error("Failed to build estimator", "error", err)
	os.Exit(1)
}
