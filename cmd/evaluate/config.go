package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/avukotic/tsbench/internal/evalspec"
	"github.com/avukotic/tsbench/internal/results"
	"github.com/avukotic/tsbench/pkg/config/env"
)

type cliConfig struct {
	SpecPath    string
	Name        string
	Kind        string
	ResultsPath string
	OutPath     string
	Estimators  string
	Datasets    string
	Resamples   string
	Splits      string
	Strict      bool
	Figures     bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to evaluation spec YAML (overrides the quick-mode flags)")
	flag.StringVar(&cfg.Name, "name", "", "Evaluation name, labels the output directory (default <kind>_evaluation)")
	flag.StringVar(&cfg.Kind, "kind", "classifier", "Estimator kind: classifier, regressor, clusterer, or forecaster")
	flag.StringVar(&cfg.ResultsPath, "results", "", "Root directory result files are read from (default $TSBENCH_RESULTS_DIR)")
	flag.StringVar(&cfg.OutPath, "out", "", "Directory evaluation output is written under (default $TSBENCH_EVAL_DIR)")
	flag.StringVar(&cfg.Estimators, "estimators", "", "Estimator names, comma-separated")
	flag.StringVar(&cfg.Datasets, "datasets", "", "Dataset names, comma-separated")
	flag.StringVar(&cfg.Resamples, "resamples", "0", "Resample ids, comma-separated")
	flag.StringVar(&cfg.Splits, "splits", "", "Splits to evaluate (train,test); empty picks the kind's convention")
	flag.BoolVar(&cfg.Strict, "strict", false, "Fail instead of narrowing to complete datasets when results are missing")
	flag.BoolVar(&cfg.Figures, "figures", true, "Write critical difference figure payloads")

	flag.Parse()
	return cfg
}

func (c *cliConfig) applyDefaults(s env.Settings) {
	if c.ResultsPath == "" {
		c.ResultsPath = s.ResultsDir
	}
	if c.OutPath == "" {
		c.OutPath = s.EvalDir
	}
}

func (c cliConfig) buildQuickSpec() (*evalspec.EvalSpec, error) {
	resamples, err := c.parseResamples()
	if err != nil {
		return nil, err
	}

	s := &evalspec.EvalSpec{
		Name:           c.Name,
		Kind:           results.Kind(c.Kind),
		LoadPath:       c.ResultsPath,
		SavePath:       c.OutPath,
		Estimators:     splitList(c.Estimators),
		Datasets:       splitList(c.Datasets),
		Resamples:      resamples,
		Splits:         splitList(c.Splits),
		ErrorOnMissing: c.Strict,
	}
	if s.Name == "" {
		s.Name = c.Kind + "_evaluation"
	}
	return s, nil
}

func (c cliConfig) parseResamples() ([]int, error) {
	vals := make([]int, 0, 4)
	for _, p := range splitList(c.Resamples) {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid resample id %q: %w", p, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("resample id must be non-negative, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
