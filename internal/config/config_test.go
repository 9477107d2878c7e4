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
	path := filepath.Join(t.TempDir(), "ottobar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Lines, 17)
	assert.Equal(t, "GPIO11", cfg.Lines[0])
	assert.Equal(t, "GPIO5", cfg.Lines[16])
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvDriver, "")
	t.Setenv(EnvCatalog, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, `
driver: sim
lines: [a, b, c]
catalog: drinks.json
log_level: verbose
chime: false
progress_interval: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSim, cfg.Driver)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Lines)
	assert.Equal(t, "drinks.json", cfg.Catalog)
	assert.Equal(t, "verbose", cfg.LogLevel)
	assert.False(t, cfg.Chime)
	assert.Equal(t, 250*time.Millisecond, cfg.ProgressInterval)
	assert.Equal(t, ".ottobar-logs/ottobar.log", cfg.LogFile, "unset fields keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "driver: gpio\n")
	t.Setenv(EnvDriver, "SIM")
	t.Setenv(EnvCatalog, "/etc/ottobar/recipes.yaml")
	t.Setenv(EnvLogLevel, "off")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSim, cfg.Driver)
	assert.Equal(t, "/etc/ottobar/recipes.yaml", cfg.Catalog)
	assert.Equal(t, "off", cfg.LogLevel)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := writeConfig(t, "driver: sim\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvDriver, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverSim, cfg.Driver)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvDriver, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverGPIO, cfg.Driver)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "lines: [unterminated\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown driver", func(c *Config) { c.Driver = "serial" }, `unknown driver "serial"`},
		{"no lines", func(c *Config) { c.Lines = nil }, "no output lines"},
		{"blank line", func(c *Config) { c.Lines = []string{"GPIO4", " "} }, "line 1 has no name"},
		{"duplicate line", func(c *Config) { c.Lines = []string{"GPIO4", "GPIO4"} }, "reuses GPIO4"},
		{"zero interval", func(c *Config) { c.ProgressInterval = 0 }, "progress_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateNormalizesDriver(t *testing.T) {
	cfg := Default()
	cfg.Driver = " GPIO "
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverGPIO, cfg.Driver)
}
