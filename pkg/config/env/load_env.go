// Package env bootstraps process configuration from .env files and
// environment variables.
package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings are the environment defaults shared by the CLIs. Flags
// override them.
type Settings struct {
	DataDir    string `envconfig:"TSBENCH_DATA_DIR" default:"data"`
	ResultsDir string `envconfig:"TSBENCH_RESULTS_DIR" default:"results"`
	EvalDir    string `envconfig:"TSBENCH_EVAL_DIR" default:"evaluation"`
}

// LoadDotEnv loads variables from a .env file when one is present.
// TSBENCH_ENV_PATH overrides the default path. A missing file at the
// default path is not an error.
func LoadDotEnv(defaultPath string) error {
	envPath := defaultPath
	if p := os.Getenv("TSBENCH_ENV_PATH"); p != "" {
		envPath = p
	}

	if err := godotenv.Load(envPath); err != nil {
		if os.IsNotExist(err) && envPath == defaultPath {
			slog.Debug("no .env file, using process environment", "path", envPath)
			return nil
		}
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	slog.Info("loaded environment file", "path", envPath)
	return nil
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, fmt.Errorf("process environment: %w", err)
	}
	return s, nil
}
