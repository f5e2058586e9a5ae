package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/avukotic/tsbench/internal/evalspec"
	"github.com/avukotic/tsbench/internal/evaluation"
	"github.com/avukotic/tsbench/internal/plotting"
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

	var s *evalspec.EvalSpec
	if cfg.SpecPath != "" {
		s, err = evalspec.LoadFromFile(cfg.SpecPath)
		if err != nil {
			slog.Error("Failed to load spec", "path", cfg.SpecPath, "error", err)
			os.Exit(1)
		}
	} else {
		s, err = cfg.buildQuickSpec()
		if err != nil {
			slog.Error("Invalid flags", "error", err)
			os.Exit(1)
		}
	}

	problem := evaluation.Problem{
		LoadPath:   s.LoadPath,
		Estimators: s.Estimators,
		Datasets:   s.Datasets,
		Resamples:  s.Resamples,
		Splits:     s.Splits,
	}
	opts := evaluation.Options{
		SavePath:       s.SavePath,
		EvalName:       s.Name,
		ErrorOnMissing: s.ErrorOnMissing,
	}
	if cfg.Figures {
		opts.Plotter = plotting.Sidecar{}
	}

	var ev *evaluation.Evaluation
	switch s.Kind {
	case results.KindClassifier:
		ev, err = evaluation.EvaluateClassifiersByProblem(problem, opts)
	case results.KindRegressor:
		ev, err = evaluation.EvaluateRegressorsByProblem(problem, opts)
	case results.KindClusterer:
		ev, err = evaluation.EvaluateClusterersByProblem(problem, opts)
	case results.KindForecaster:
		ev, err = evaluation.EvaluateForecastersByProblem(problem, opts)
	default:
		slog.Error("Unknown kind", "kind", s.Kind)
		os.Exit(1)
	}
	if err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}

	evaluation.WriteTable(ev, os.Stdout)

	slog.Info("Evaluation complete",
		"name", s.Name,
		"estimators", len(ev.Estimators),
		"datasets", len(ev.Datasets),
		"statistics", len(ev.Statistics),
		"output", filepath.Join(s.SavePath, s.Name))
}
