// Package config provides configuration for goshear.
//
// Config file locations (priority order):
//  1. --config flag
//  2. $GOSHEAR_CONFIG
//  3. ./goshear.yaml
//  4. ~/.config/goshear/config.yaml
//
// A .env file in the working directory is loaded first, and GOSHEAR_*
// environment variables override values from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats for analysis results
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is the goshear configuration
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
	Units    UnitsConfig    `yaml:"units"`
	Database DatabaseConfig `yaml:"database"`
	Batch    BatchConfig    `yaml:"batch"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `yaml:"format"`    // table, json, yaml
	Precision int    `yaml:"precision"` // decimals in table output
	Chart     bool   `yaml:"chart"`     // print the terminal shear chart
}

// UnitsConfig holds display labels. Values are never converted.
type UnitsConfig struct {
	Length string `yaml:"length"`
	Force  string `yaml:"force"`
}

// DatabaseConfig locates the analysis history database
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BatchConfig bounds the batch runner
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "warn", Format: "console"},
		Output:   OutputConfig{Format: FormatTable, Precision: 3, Chart: true},
		Units:    UnitsConfig{Length: "m", Force: "kN"},
		Database: DatabaseConfig{Path: defaultDatabasePath()},
		Batch:    BatchConfig{Workers: 4},
	}
}

// Load loads .env, then the config file at path (or the first one found),
// then environment overrides. A missing file yields defaults.
func Load(path string) (*Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = FindConfigPath()
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// FindConfigPath returns the first existing config file, or ""
func FindConfigPath() string {
	candidates := []string{os.Getenv("GOSHEAR_CONFIG"), "goshear.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "goshear", "config.yaml"))
	}

	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Save writes the config as YAML
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the commands cannot honor
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (expected table, json or yaml)", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		return fmt.Errorf("invalid output precision %d", c.Output.Precision)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("invalid batch workers %d", c.Batch.Workers)
	}
	return nil
}

// applyDefaults fills in values an explicit file left empty
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Units.Length == "" {
		c.Units.Length = def.Units.Length
	}
	if c.Units.Force == "" {
		c.Units.Force = def.Units.Force
	}
	if c.Database.Path == "" {
		c.Database.Path = def.Database.Path
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = def.Batch.Workers
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GOSHEAR_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("GOSHEAR_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("GOSHEAR_OUTPUT"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("GOSHEAR_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Output.Precision = n
		}
	}
	if v := os.Getenv("GOSHEAR_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("GOSHEAR_LENGTH_UNIT"); v != "" {
		c.Units.Length = v
	}
	if v := os.Getenv("GOSHEAR_FORCE_UNIT"); v != "" {
		c.Units.Force = v
	}
}

func defaultDatabasePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "goshear", "history.db")
	}
	return "goshear.db"
}
