// Package config loads CLI configuration from defaults, an optional
// sqlbridge.yaml file, SQLBRIDGE_* environment variables, and flags,
// in that order of increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the resolved CLI configuration.
type Config struct {
	Output      string `koanf:"output"`       // table or json
	HistoryPath string `koanf:"history_path"` // sqlite file for query history
	LogLevel    string `koanf:"log_level"`    // debug, info, warn, error
	Verbose     bool   `koanf:"verbose"`
}

// current holds the configuration loaded by the root command for
// access by subcommands.
var current *Config

// SetCurrent stores the loaded configuration.
func SetCurrent(c *Config) {
	current = c
}

// Current returns the loaded configuration, or defaults when the root
// command has not run (e.g. in tests).
func Current() *Config {
	if current != nil {
		return current
	}
	return &Config{
		Output:      "table",
		HistoryPath: ".sqlbridge/history.db",
		LogLevel:    "info",
	}
}

var defaults = map[string]any{
	"output":       "table",
	"history_path": ".sqlbridge/history.db",
	"log_level":    "info",
	"verbose":      false,
}

// Load resolves the configuration. cfgFile may be empty, in which case
// sqlbridge.yaml / sqlbridge.yml in the working directory are tried.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// SQLBRIDGE_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider("SQLBRIDGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLBRIDGE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		// Flag names use hyphens; config keys use underscores.
		if err := k.Load(posflag.ProviderWithValue(flags, ".", k, func(key, value string) (string, any) {
			return strings.ReplaceAll(key, "-", "_"), value
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// findConfigFile resolves the config file path.
// Priority: explicit path > sqlbridge.yaml > sqlbridge.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sqlbridge.yaml", "sqlbridge.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// NewLogger builds a slog logger honoring the configured level.
func (c *Config) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
