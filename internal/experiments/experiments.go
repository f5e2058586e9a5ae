// Package experiments fits estimators on benchmark problems and writes
// their predictions as result files the evaluation pipeline can
// aggregate. One run covers one estimator on one dataset resample.
package experiments

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avukotic/tsbench/internal/datasets"
	"github.com/avukotic/tsbench/internal/estimators"
	"github.com/avukotic/tsbench/internal/results"
)

// RunClassification fits the classifier on the train split and writes
// test and, when requested, leave-one-out train probability results.
// Class labels are encoded against the sorted unique train labels, so
// a test label absent from the train split is an error.
func RunClassification(train, test *datasets.Dataset, clf estimators.Classifier, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	name := cfg.estimatorName(clf.Name())

	buildTest, buildTrain := cfg.resolveTargets(name)
	if !buildTest && !buildTrain {
		logSkip(name, cfg)
		return nil
	}

	enc := datasets.NewClassEncoding(train.Labels)
	yTrain, err := enc.Encode(train.Labels)
	if err != nil {
		return fmt.Errorf("encode train labels: %w", err)
	}
	yTest, err := enc.Encode(test.Labels)
	if err != nil {
		return fmt.Errorf("encode test labels: %w", err)
	}

	slog.Info("running classification experiment",
		"estimator", name, "dataset", cfg.DatasetName, "resample", cfg.ResampleID)

	start := time.Now()
	if err := clf.Fit(train.Series, yTrain); err != nil {
		return fmt.Errorf("fit %s on %s: %w", name, cfg.DatasetName, err)
	}
	fitMillis := millisSince(start)

	comment := runComment("RunClassification", "Class encoding: "+strings.Join(enc.Classes, " "))

	if buildTest {
		start = time.Now()
		probs, err := clf.PredictProba(test.Series)
		if err != nil {
			return fmt.Errorf("predict %s on %s: %w", name, cfg.DatasetName, err)
		}
		predictMillis := millisSince(start)

		r := results.NewClassifierResult(
			cfg.meta(name, splitTest, clf.Params(), comment, fitMillis, predictMillis),
			yTest, argmaxEach(probs), probs)
		if err := r.WriteFile(cfg.resultPath(name, splitTest)); err != nil {
			return err
		}
	}

	if buildTrain {
		prober, ok := clf.(estimators.TrainProber)
		if !ok {
			return fmt.Errorf("%s cannot estimate probabilities for its own training data", name)
		}
		start = time.Now()
		probs, err := prober.TrainProbabilities()
		if err != nil {
			return fmt.Errorf("estimate train probabilities for %s on %s: %w", name, cfg.DatasetName, err)
		}
		estimateMillis := millisSince(start)

		r := results.NewClassifierResult(
			cfg.meta(name, splitTrain, clf.Params(), comment, fitMillis, estimateMillis),
			yTrain, argmaxEach(probs), probs)
		if err := r.WriteFile(cfg.resultPath(name, splitTrain)); err != nil {
			return err
		}
	}
	return nil
}

// RunRegression fits the regressor on the train split and writes test
// and, when requested, leave-one-out train prediction results. Targets
// are the numeric dataset labels.
func RunRegression(train, test *datasets.Dataset, reg estimators.Regressor, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	name := cfg.estimatorName(reg.Name())

	buildTest, buildTrain := cfg.resolveTargets(name)
	if !buildTest && !buildTrain {
		logSkip(name, cfg)
		return nil
	}

	yTrain, err := train.NumericTargets()
	if err != nil {
		return fmt.Errorf("train targets: %w", err)
	}
	yTest, err := test.NumericTargets()
	if err != nil {
		return fmt.Errorf("test targets: %w", err)
	}

	slog.Info("running regression experiment",
		"estimator", name, "dataset", cfg.DatasetName, "resample", cfg.ResampleID)

	start := time.Now()
	if err := reg.Fit(train.Series, yTrain); err != nil {
		return fmt.Errorf("fit %s on %s: %w", name, cfg.DatasetName, err)
	}
	fitMillis := millisSince(start)

	comment := runComment("RunRegression", "")

	if buildTest {
		start = time.Now()
		preds, err := reg.Predict(test.Series)
		if err != nil {
			return fmt.Errorf("predict %s on %s: %w", name, cfg.DatasetName, err)
		}
		predictMillis := millisSince(start)

		r := results.NewRegressorResult(
			cfg.meta(name, splitTest, reg.Params(), comment, fitMillis, predictMillis),
			yTest, preds)
		if err := r.WriteFile(cfg.resultPath(name, splitTest)); err != nil {
			return err
		}
	}

	if buildTrain {
		predictor, ok := reg.(estimators.TrainPredictor)
		if !ok {
			return fmt.Errorf("%s cannot estimate values for its own training data", name)
		}
		start = time.Now()
		preds, err := predictor.TrainPredictions()
		if err != nil {
			return fmt.Errorf("estimate train predictions for %s on %s: %w", name, cfg.DatasetName, err)
		}
		estimateMillis := millisSince(start)

		r := results.NewRegressorResult(
			cfg.meta(name, splitTrain, reg.Params(), comment, fitMillis, estimateMillis),
			yTrain, preds)
		if err := r.WriteFile(cfg.resultPath(name, splitTrain)); err != nil {
			return err
		}
	}
	return nil
}

// RunClustering fits the clusterer on the train split. The train
// result holds the fitted cluster assignments; the test result holds
// assignments predicted for unseen series. Dataset class labels are
// the ground truth.
func RunClustering(train, test *datasets.Dataset, cl estimators.Clusterer, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	name := cfg.estimatorName(cl.Name())

	buildTest, buildTrain := cfg.resolveTargets(name)
	if !buildTest && !buildTrain {
		logSkip(name, cfg)
		return nil
	}

	enc := datasets.NewClassEncoding(train.Labels)
	yTrain, err := enc.Encode(train.Labels)
	if err != nil {
		return fmt.Errorf("encode train labels: %w", err)
	}
	yTest, err := enc.Encode(test.Labels)
	if err != nil {
		return fmt.Errorf("encode test labels: %w", err)
	}

	slog.Info("running clustering experiment",
		"estimator", name, "dataset", cfg.DatasetName, "resample", cfg.ResampleID)

	start := time.Now()
	if err := cl.Fit(train.Series); err != nil {
		return fmt.Errorf("fit %s on %s: %w", name, cfg.DatasetName, err)
	}
	fitMillis := millisSince(start)

	comment := runComment("RunClustering", "Class encoding: "+strings.Join(enc.Classes, " "))

	if buildTrain {
		clusters := cl.Labels()
		r := results.NewClustererResult(
			cfg.meta(name, splitTrain, cl.Params(), comment, fitMillis, 0),
			yTrain, clusters, oneHot(clusters, cl.NumClusters()))
		if err := r.WriteFile(cfg.resultPath(name, splitTrain)); err != nil {
			return err
		}
	}

	if buildTest {
		start = time.Now()
		clusters, err := cl.Predict(test.Series)
		if err != nil {
			return fmt.Errorf("predict %s on %s: %w", name, cfg.DatasetName, err)
		}
		predictMillis := millisSince(start)

		r := results.NewClustererResult(
			cfg.meta(name, splitTest, cl.Params(), comment, fitMillis, predictMillis),
			yTest, clusters, oneHot(clusters, cl.NumClusters()))
		if err := r.WriteFile(cfg.resultPath(name, splitTest)); err != nil {
			return err
		}
	}
	return nil
}

// RunForecasting fits the forecaster on the train series and forecasts
// the whole test horizon. Forecasters have no train results.
func RunForecasting(train, test []float64, f estimators.Forecaster, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.BuildTrainFile {
		return fmt.Errorf("forecasting experiments build test results only")
	}
	if len(test) == 0 {
		return fmt.Errorf("empty test series for %s", cfg.DatasetName)
	}
	name := cfg.estimatorName(f.Name())

	buildTest, _ := cfg.resolveTargets(name)
	if !buildTest {
		logSkip(name, cfg)
		return nil
	}

	slog.Info("running forecasting experiment",
		"estimator", name, "dataset", cfg.DatasetName, "resample", cfg.ResampleID)

	start := time.Now()
	if err := f.Fit(train); err != nil {
		return fmt.Errorf("fit %s on %s: %w", name, cfg.DatasetName, err)
	}
	fitMillis := millisSince(start)

	start = time.Now()
	preds, err := f.Forecast(len(test))
	if err != nil {
		return fmt.Errorf("forecast %s on %s: %w", name, cfg.DatasetName, err)
	}
	predictMillis := millisSince(start)

	r := results.NewForecasterResult(
		cfg.meta(name, splitTest, f.Params(), runComment("RunForecasting", ""), fitMillis, predictMillis),
		test, preds)
	return r.WriteFile(cfg.resultPath(name, splitTest))
}

func logSkip(estimator string, cfg Config) {
	slog.Warn("result files already exist, skipping",
		"estimator", estimator, "dataset", cfg.DatasetName, "resample", cfg.ResampleID)
}

// runComment builds the free-text metadata comment on the result file
// header line. The run id ties train and test files of one run
// together.
func runComment(op, extra string) string {
	c := fmt.Sprintf("Generated by %s on %s. Run id %s.",
		op, time.Now().Format(time.RFC3339), uuid.NewString())
	if extra != "" {
		c += " " + extra + "."
	}
	return c
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Milliseconds())
}

// argmaxEach turns probability vectors into class predictions, ties
// resolving to the lower class index.
func argmaxEach(probs [][]float64) []int {
	preds := make([]int, len(probs))
	for i, p := range probs {
		best := 0
		for j := 1; j < len(p); j++ {
			if p[j] > p[best] {
				best = j
			}
		}
		preds[i] = best
	}
	return preds
}

func oneHot(clusters []int, n int) [][]float64 {
	probs := make([][]float64, len(clusters))
	for i, c := range clusters {
		probs[i] = make([]float64, n)
		if c >= 0 && c < n {
			probs[i][c] = 1
		}
	}
	return probs
}
