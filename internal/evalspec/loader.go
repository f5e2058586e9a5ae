// Package evalspec loads and validates YAML evaluation specs for the
// evaluate CLI.
package evalspec

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avukotic/tsbench/internal/results"
)

func LoadFromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*EvalSpec, error) {
	var s EvalSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validKinds = map[results.Kind]bool{
	results.KindClassifier: true,
	results.KindRegressor:  true,
	results.KindClusterer:  true,
	results.KindForecaster: true,
}

func validate(s *EvalSpec) error {
	if s.Kind == "" {
		return fmt.Errorf("spec has no kind")
	}
	if !validKinds[s.Kind] {
		return fmt.Errorf("spec has invalid kind %q", s.Kind)
	}
	if s.LoadPath == "" {
		return fmt.Errorf("spec has no load_path")
	}
	if s.SavePath == "" {
		return fmt.Errorf("spec has no save_path")
	}
	if len(s.Estimators) == 0 {
		return fmt.Errorf("spec has no estimators")
	}
	if len(s.Datasets) == 0 {
		return fmt.Errorf("spec has no datasets")
	}
	for _, split := range s.Splits {
		switch strings.ToLower(split) {
		case "train", "test":
		default:
			return fmt.Errorf("spec has invalid split %q", split)
		}
	}
	if s.Name == "" {
		s.Name = string(s.Kind) + "_evaluation"
	}
	if len(s.Resamples) == 0 {
		s.Resamples = []int{0}
	}
	return nil
}
