// Package config handles coffman configuration using Viper.
//
// Values are layered: built-in defaults, then the config file
// (~/.coffman/config.yaml or an explicit path), then COFFMAN_* environment
// variables. Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. COFFMAN_LOG_LEVEL.
const EnvPrefix = "COFFMAN"

// Config holds the application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" json:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" json:"output" yaml:"output"`
	Store  StoreConfig  `mapstructure:"store" json:"store" yaml:"store"`
	Rank   RankConfig   `mapstructure:"rank" json:"rank" yaml:"rank"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// OutputConfig holds display-related configuration.
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format" yaml:"format"`
	Color  bool   `mapstructure:"color" json:"color" yaml:"color"`
}

// StoreConfig holds ranking cache configuration.
type StoreConfig struct {
	Path string `mapstructure:"path" json:"path" yaml:"path"`
}

// RankConfig holds ranking configuration.
type RankConfig struct {
	// Workers bounds parallel ranking of multiple graphs. Zero means one
	// worker per CPU.
	Workers int `mapstructure:"workers" json:"workers" yaml:"workers"`
}

// Dir returns the coffman state directory, ~/.coffman.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coffman"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from file and environment. An empty configPath
// looks for ~/.coffman/config.yaml and tolerates its absence; an explicit
// path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Store.Path = expandHome(cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	storePath := "coffman.db"
	if dir, err := Dir(); err == nil {
		storePath = filepath.Join(dir, "coffman.db")
	}

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("store.path", storePath)
	v.SetDefault("rank.workers", 0)
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output.format %q: must be text, json or yaml", c.Output.Format)
	}
	if c.Rank.Workers < 0 {
		return fmt.Errorf("invalid rank.workers %d: must not be negative", c.Rank.Workers)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	return nil
}

// Save writes cfg as YAML to path.
func Save(cfg *Config, path string) error {
	v := viper.New()

	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("output.format", cfg.Output.Format)
	v.Set("output.color", cfg.Output.Color)
	v.Set("store.path", cfg.Store.Path)
	v.Set("rank.workers", cfg.Rank.Workers)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return v.WriteConfigAs(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
