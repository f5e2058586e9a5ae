package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Setenv("TSBENCH_DATA_DIR", "ucr")
	t.Setenv("TSBENCH_RESULTS_DIR", "out")
	require.NoError(t, os.Unsetenv("TSBENCH_EVAL_DIR"))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "ucr", s.DataDir)
	assert.Equal(t, "out", s.ResultsDir)
	assert.Equal(t, "evaluation", s.EvalDir)
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("TSBENCH_ENV_PATH", "")
	t.Setenv("TSBENCH_DATA_DIR", "")
	require.NoError(t, os.Unsetenv("TSBENCH_ENV_PATH"))
	require.NoError(t, os.Unsetenv("TSBENCH_DATA_DIR"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TSBENCH_DATA_DIR=fromfile\n"), 0644))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "fromfile", os.Getenv("TSBENCH_DATA_DIR"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Setenv("TSBENCH_ENV_PATH", "")
	require.NoError(t, os.Unsetenv("TSBENCH_ENV_PATH"))

	// A missing file at the default path is fine.
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	// An explicitly configured path must load.
	t.Setenv("TSBENCH_ENV_PATH", filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, LoadDotEnv(".env"))
}
