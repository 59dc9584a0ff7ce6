package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/vectors-2d/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
vector:
  precision: 4
demo:
  steps: 50
  speed: 2.5
  max_turn_degrees: 15
  seed: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.Vector.GetPrecision())
	assert.Equal(t, 50, cfg.Demo.GetSteps())
	assert.Equal(t, 2.5, cfg.Demo.GetSpeed())
	assert.Equal(t, 15.0, cfg.Demo.GetMaxTurn())
	assert.Equal(t, int64(42), cfg.Demo.GetSeed())
	assert.Equal(t, 3.0, cfg.Demo.GetMaxSpeed())
}

func TestLoadZeroPrecision(t *testing.T) {
	cfg, err := Load(writeConfig(t, "vector:\n  precision: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Vector.GetPrecision())
}

func TestLoadWithoutPath(t *testing.T) {
	t.Setenv("VEC2D_CONFIG", "")
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Nil(t, cfg)

	t.Setenv("VEC2D_CONFIG", writeConfig(t, "demo:\n  steps: 7\n"))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Demo.GetSteps())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "vector: [1, 2"))
	assert.Error(t, err)
}

func TestPrecisionFallback(t *testing.T) {
	t.Setenv("VEC2D_PRECISION", "")
	var empty *VectorConfig
	assert.Equal(t, vec.DefaultPrecision, empty.GetPrecision())

	t.Setenv("VEC2D_PRECISION", "6")
	assert.Equal(t, 6, (&VectorConfig{}).GetPrecision())

	outOfRange := 99
	assert.Equal(t, 6, (&VectorConfig{Precision: &outOfRange}).GetPrecision())

	t.Setenv("VEC2D_PRECISION", "abc")
	assert.Equal(t, vec.DefaultPrecision, (&VectorConfig{}).GetPrecision())
}

func TestDemoEnvFallback(t *testing.T) {
	t.Setenv("VEC2D_DEMO_SPEED", "4.5")
	t.Setenv("VEC2D_DEMO_STEPS", "-3")
	t.Setenv("VEC2D_DEMO_SEED", "99")

	d := &DemoConfig{}
	assert.Equal(t, 4.5, d.GetSpeed())
	assert.Equal(t, 20, d.GetSteps())
	assert.Equal(t, int64(99), d.GetSeed())

	d.Speed = 1
	assert.Equal(t, 1.0, d.GetSpeed())
}
