package evalspec

import "github.com/avukotic/tsbench/internal/results"

// EvalSpec is the YAML description of one evaluation run: which result
// files to load and how to aggregate them.
type EvalSpec struct {
	// Name labels the output directory. Defaults to
	// "<kind>_evaluation".
	Name string `yaml:"name"`
	// Kind selects the estimator family: classifier, regressor,
	// clusterer or forecaster.
	Kind results.Kind `yaml:"kind"`

	LoadPath string `yaml:"load_path"`
	SavePath string `yaml:"save_path"`

	Estimators []string `yaml:"estimators"`
	Datasets   []string `yaml:"datasets"`
	// Resamples defaults to the single resample 0.
	Resamples []int `yaml:"resamples"`
	// Splits defaults per kind; clusterers evaluate train and test.
	Splits []string `yaml:"splits,omitempty"`

	ErrorOnMissing bool `yaml:"error_on_missing"`
}
