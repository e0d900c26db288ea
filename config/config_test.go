package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kid-maze/game"
	"github.com/lixenwraith/kid-maze/maze"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kid-maze.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.Maze.Size)
	assert.True(t, cfg.Fog.Enabled)
	assert.Equal(t, game.Fog{Enabled: true, Radius: 2, Metric: game.Chebyshev}, cfg.GameFog())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[maze]
size = 17
seed = 42

[fog]
enabled = false
radius = 3
metric = "manhattan"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 17, cfg.Maze.Size)
	assert.Equal(t, int64(42), cfg.Maze.Seed)
	assert.Equal(t, maze.DefaultSampleSize, cfg.Maze.SampleSize, "unset keys keep defaults")
	assert.Equal(t, game.Fog{Enabled: false, Radius: 3, Metric: game.Manhattan}, cfg.GameFog())

	gen := cfg.GeneratorConfig()
	assert.Equal(t, int64(42), gen.Seed)
	assert.Equal(t, maze.DefaultMaxAttempts, gen.MaxAttempts)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[maze]\nsizee = 17\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[maze]\nsize = 16\n"))
	assert.ErrorIs(t, err, maze.ErrEvenSize)

	_, err = Load(writeConfig(t, "[maze]\nsize = 3\n"))
	assert.ErrorIs(t, err, maze.ErrSizeTooSmall)

	_, err = Load(writeConfig(t, "[fog]\nmetric = \"euclid\"\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[audio]\nvolume = 1.5\n"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[maze]\nsize = 17\n")
	t.Setenv(EnvSize, "21")
	t.Setenv(EnvFog, "false")
	t.Setenv(EnvFogMetric, "manhattan")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.Maze.Size)
	assert.Equal(t, int64(7), cfg.Maze.Seed)
	assert.False(t, cfg.Fog.Enabled)
	assert.Equal(t, "manhattan", cfg.Fog.Metric)
	assert.True(t, cfg.Log.Debug)
}

func TestEnvMalformed(t *testing.T) {
	t.Setenv(EnvFogRadius, "two")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvFogRadius)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Maze.Seed = 99

	data, err := Encode(cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, decode(data, &decoded))
	assert.Equal(t, cfg, decoded)
}
