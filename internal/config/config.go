// Package config loads launcher settings from flags, SHOPDOCS_* environment
// variables, a YAML config file and built-in defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable key.
	EnvPrefix = "SHOPDOCS"
	// EnvConfigFile names the environment variable that points at a config file.
	EnvConfigFile = "SHOPDOCS_CONFIG"

	appName = "shopdocs"
)

// Config is the effective launcher configuration.
type Config struct {
	Drawings   DrawingsConfig `mapstructure:"drawings" yaml:"drawings"`
	Reports    ReportsConfig  `mapstructure:"ereports" yaml:"ereports"`
	Extensions []string       `mapstructure:"extensions" yaml:"extensions"`
	Handler    string         `mapstructure:"handler" yaml:"handler"`
	MaxRange   int            `mapstructure:"max_range" yaml:"max_range"`
	DryRun     bool           `mapstructure:"dry_run" yaml:"dry_run"`
	LogLevel   string         `mapstructure:"log_level" yaml:"log_level"`
	History    HistoryConfig  `mapstructure:"history" yaml:"history"`
}

// DrawingsConfig locates shop drawings. A job's drawings live in
// <Root>/<JOB>, unreleased ones in <Root>/<JOB>/<Preliminary>.
type DrawingsConfig struct {
	Root        string `mapstructure:"root" yaml:"root"`
	Preliminary string `mapstructure:"preliminary" yaml:"preliminary"`
}

// ReportsConfig locates e-reports. Width zero-pads report numbers in
// filenames; zero disables padding.
type ReportsConfig struct {
	Root  string `mapstructure:"root" yaml:"root"`
	Width int    `mapstructure:"width" yaml:"width"`
}

// HistoryConfig controls the recently-opened ledger.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	File    string `mapstructure:"file" yaml:"file"`
	Limit   int    `mapstructure:"limit" yaml:"limit"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// SetDefaults registers every key with its default value. Keys must be known
// to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("drawings.root", `\\Hssieng\plp\shopdwgs`)
	v.SetDefault("drawings.preliminary", "Preliminary")
	v.SetDefault("ereports.root", `\\hssfileserv1\Shops\eReports`)
	v.SetDefault("ereports.width", 5)
	v.SetDefault("extensions", []string{"PDF", "pdf"})
	v.SetDefault("handler", "")
	v.SetDefault("max_range", 250)
	v.SetDefault("dry_run", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.file", filepath.Join(DataDir(), "history.json"))
	v.SetDefault("history.limit", 500)
}

// New creates a viper instance with defaults, environment binding and config
// file discovery. An explicit configFile (or SHOPDOCS_CONFIG) must exist;
// a missing discovered file is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvConfigFile)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join("$HOME", ".config", appName))
	v.AddConfigPath(filepath.Join("/etc", appName))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Drawings.Root == "" {
		return fmt.Errorf("drawings.root must not be empty")
	}
	if c.Reports.Root == "" {
		return fmt.Errorf("ereports.root must not be empty")
	}
	if c.Reports.Width < 0 {
		return fmt.Errorf("ereports.width must not be negative, got %d", c.Reports.Width)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must list at least one extension")
	}
	for _, ext := range c.Extensions {
		if strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("extensions must not contain an empty entry")
		}
	}
	if c.MaxRange < 1 {
		return fmt.Errorf("max_range must be at least 1, got %d", c.MaxRange)
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("log_level %q is not one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if c.History.Enabled {
		if c.History.File == "" {
			return fmt.Errorf("history.file must be set when history is enabled")
		}
		if c.History.Limit < 1 {
			return fmt.Errorf("history.limit must be at least 1, got %d", c.History.Limit)
		}
	}
	return nil
}

// DataDir returns the XDG data directory for shopdocs
func DataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, appName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", appName)
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	return filepath.Join(homeDir, ".local", "share", appName)
}
