package main

import (
	"flag"

	"github.com/avukotic/tsbench/pkg/config/env"
)

type cliConfig struct {
	DataDir     string
	ResultsPath string
	Problem     string
	Estimator   string
	Kind        string
	Resample    int
	TestFile    bool
	TrainFile   bool
	Overwrite   bool

	trainFlagSet bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.DataDir, "data", "", "Directory holding <problem>/<problem>_TRAIN.ts and _TEST.ts (default $TSBENCH_DATA_DIR)")
	flag.StringVar(&cfg.ResultsPath, "results", "", "Root directory result files are written under (default $TSBENCH_RESULTS_DIR)")
	flag.StringVar(&cfg.Problem, "problem", "", "Problem (dataset) name")
	flag.StringVar(&cfg.Estimator, "estimator", "", "Estimator registry name, for example 1nn-dtw")
	flag.StringVar(&cfg.Kind, "kind", "classifier", "Estimator kind: classifier, regressor, clusterer, or forecaster")
	flag.IntVar(&cfg.Resample, "resample", 0, "Resample id; 0 keeps the published train/test split")
	flag.BoolVar(&cfg.TestFile, "test", true, "Build the test result file")
	flag.BoolVar(&cfg.TrainFile, "train", false, "Build the train result file (clusterers default to true)")
	flag.BoolVar(&cfg.Overwrite, "overwrite", false, "Rebuild result files that already exist")

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "train" {
			cfg.trainFlagSet = true
		}
	})
	return cfg
}

func (c *cliConfig) applyDefaults(s env.Settings) {
	if c.DataDir == "" {
		c.DataDir = s.DataDir
	}
	if c.ResultsPath == "" {
		c.ResultsPath = s.ResultsDir
	}
	// Clusterers report the fitted assignments, so their train file is
	// on unless the flag says otherwise.
	if !c.trainFlagSet && c.Kind == "clusterer" {
		c.TrainFile = true
	}
}
