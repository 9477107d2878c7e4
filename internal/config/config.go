// Package config loads the machine configuration: which output driver to
// use, the ordered relay lines, the recipe catalog, and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Driver names.
const (
	DriverGPIO = "gpio"
	DriverSim  = "sim"
)

// Env var names that override file values.
const (
	EnvConfig   = "OTTOBAR_CONFIG"
	EnvDriver   = "OTTOBAR_DRIVER"
	EnvCatalog  = "OTTOBAR_CATALOG"
	EnvLogLevel = "OTTOBAR_LOG_LEVEL"
)

// DefaultPath is read when neither --config nor OTTOBAR_CONFIG is set.
// A missing default file is not an error.
const DefaultPath = "ottobar.yaml"

// DefaultLines are the BCM names of the relay board wiring, in pump
// order. Pump 0 is physical pin 23.
var DefaultLines = []string{
	"GPIO11", "GPIO9", "GPIO10", "GPIO22", "GPIO27", "GPIO17", "GPIO4", "GPIO3",
	"GPIO21", "GPIO20", "GPIO16", "GPIO12", "GPIO26", "GPIO19", "GPIO13", "GPIO6",
	"GPIO5",
}

// Config is the on-disk configuration.
type Config struct {
	Driver           string        `yaml:"driver"`
	Lines            []string      `yaml:"lines"`
	Catalog          string        `yaml:"catalog"`
	LogLevel         string        `yaml:"log_level"`
	LogFile          string        `yaml:"log_file"`
	Chime            bool          `yaml:"chime"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Driver:           DriverGPIO,
		Lines:            append([]string(nil), DefaultLines...),
		LogLevel:         "normal",
		LogFile:          ".ottobar-logs/ottobar.log",
		Chime:            true,
		ProgressInterval: time.Second,
	}
}

// Load reads path over the defaults, applies env overrides and validates
// the result. An empty path falls back to OTTOBAR_CONFIG and then to
// DefaultPath; only an explicitly named file has to exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDriver); v != "" {
		c.Driver = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Driver != DriverGPIO && c.Driver != DriverSim {
		errs = append(errs, fmt.Errorf("unknown driver %q (want %s or %s)", c.Driver, DriverGPIO, DriverSim))
	}

	if len(c.Lines) == 0 {
		errs = append(errs, errors.New("no output lines configured"))
	}
	seen := make(map[string]int, len(c.Lines))
	for i, name := range c.Lines {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("line %d has no name", i))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("line %d reuses %s from line %d", i, name, prev))
		}
		seen[name] = i
	}

	if c.ProgressInterval <= 0 {
		errs = append(errs, fmt.Errorf("progress_interval must be positive, got %s", c.ProgressInterval))
	}

	return errors.Join(errs...)
}
