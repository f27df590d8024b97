package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublimegame/voxelworld/internal/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxelsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv("VOXEL_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 0.2, cfg.Simulation.TickInterval)
	assert.Equal(t, uint64(5), cfg.Simulation.LavaPeriod)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  sim_radius: 2
world:
  seed: 777
  block_catalog: blocks.yaml
logging:
  console_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Simulation.SimRadius)
	assert.Equal(t, 0.2, cfg.Simulation.TickInterval, "Неуказанные поля остаются по умолчанию")
	assert.Equal(t, int64(777), cfg.World.Seed)
	assert.Equal(t, "blocks.yaml", cfg.World.BlockCatalog)
	assert.Equal(t, float32(70), cfg.Render.Fov)

	opts, err := cfg.Logging.LoggingOptions()
	require.NoError(t, err)
	assert.Equal(t, logging.DEBUG, opts.ConsoleLevel)
	assert.Equal(t, logging.DEBUG, opts.FileLevel)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "world:\n  height: 4\n")
	t.Setenv("VOXEL_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.World.Height)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "чтение конфигурации")

	_, err = Load(writeConfig(t, "simulation: [1, 2"))
	assert.ErrorContains(t, err, "разбор конфигурации")

	_, err = Load(writeConfig(t, "simulation:\n  tick_interval: 0\n"))
	assert.ErrorContains(t, err, "tick_interval")
}

func TestLoggingOptions_BadLevel(t *testing.T) {
	l := LoggingConfig{ConsoleLevel: "LOUD"}
	_, err := l.LoggingOptions()
	assert.ErrorContains(t, err, "console_level")
}

func TestMetricsAddr_EnvFallback(t *testing.T) {
	t.Setenv("VOXEL_METRICS_ADDR", ":9100")
	m := MetricsConfig{}
	assert.Equal(t, ":9100", m.GetMetricsAddr())

	m.Addr = ":2112"
	assert.Equal(t, ":2112", m.GetMetricsAddr())
}
