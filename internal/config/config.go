package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/meltforce/ftracker/internal/ingest"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig       `yaml:"log"`
	Input    string          `yaml:"input"`
	Packages []PackageConfig `yaml:"packages"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PackageConfig is a sensor package given inline in the config file.
type PackageConfig struct {
	Type string `yaml:"type"`
	Data []any  `yaml:"data"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides:
//
//	FTRACKER_LOG_LEVEL, FTRACKER_LOG_FORMAT, FTRACKER_INPUT
//
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FTRACKER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FTRACKER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FTRACKER_INPUT"); v != "" {
		cfg.Input = v
	}
}

func (c *Config) validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	for i, p := range c.Packages {
		if p.Type == "" {
			return fmt.Errorf("packages[%d].type is required", i)
		}
	}
	return nil
}

// PackageList converts inline packages for dispatch.
func (c *Config) PackageList() []ingest.Package {
	pkgs := make([]ingest.Package, 0, len(c.Packages))
	for _, p := range c.Packages {
		pkgs = append(pkgs, ingest.Package{Code: p.Type, Data: p.Data})
	}
	return pkgs
}

// NewLogger builds the slog logger described by the log section.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(l.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
