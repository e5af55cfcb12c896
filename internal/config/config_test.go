package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arenasim.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
name = "garden"

[simulation]
tick_rate = "50ms"
seed = 7
max_ticks = 100

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "garden", cfg.Server.Name)
	assert.NotZero(t, cfg.Server.StartTime)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.TickRate)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, uint64(100), cfg.Simulation.MaxTicks)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// untouched keys keep their defaults
	assert.Equal(t, float32(4), cfg.Simulation.BaseSpeed)
	assert.Equal(t, float32(0.8), cfg.Simulation.Friction)
	assert.Equal(t, "data/yaml/species.yaml", cfg.Data.Species)
	assert.Equal(t, "scripts", cfg.Data.Scripts)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[simulation\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[simulation]\nbase_speed = -1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[simulation]\nfriction = 1.5\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[simulation]\ntick_rate = \"0s\"\n"))
	assert.Error(t, err)
}
