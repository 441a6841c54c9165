// SPDX-License-Identifier: MIT
// Package: tsgen/config
//
// config.go — viper-backed settings for the tsgen command.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/tsgen/generator"
	"github.com/katalvlaran/tsgen/logging"
)

// EnvPrefix prefixes environment overrides: TSGEN_GENERATION_SAMPLES for
// generation.samples.
const EnvPrefix = "TSGEN"

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete tsgen configuration.
type Config struct {
	Generation GenerationConfig `mapstructure:"generation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// GenerationConfig holds defaults applied when a spec leaves them out.
type GenerationConfig struct {
	// Samples is the series length when a spec has none (≥ 1)
	Samples int `mapstructure:"samples"`
	// DefaultKind is the kind used for components declared without one
	DefaultKind string `mapstructure:"default_kind"`
	// Instances is the instance count for components declared without one (≥ 1)
	Instances int `mapstructure:"instances"`
}

// LoggingConfig controls the command's logger.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level"`
	// Dir receives tsgen.log; empty means stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Samples:     100,
			DefaultKind: string(generator.DefaultKind),
			Instances:   1,
		},
		Logging: LoggingConfig{
			Level: logging.LevelInfo,
			Dir:   "",
		},
	}
}

// SetDefaults registers Default() on v so keys resolve without a file.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("generation.samples", d.Generation.Samples)
	v.SetDefault("generation.default_kind", d.Generation.DefaultKind)
	v.SetDefault("generation.instances", d.Generation.Instances)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.dir", d.Logging.Dir)
}

// NewViper returns a viper instance with defaults, env overrides and the
// config file wired. An empty file searches ConfigDir() and the working
// directory for config.yaml. A missing file is not an error; an unreadable
// or malformed one is.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Generation.Samples < 1 {
		return fmt.Errorf("%w: generation.samples must be ≥ 1 (got %d)", ErrInvalidConfig, c.Generation.Samples)
	}
	if c.Generation.Instances < 1 {
		return fmt.Errorf("%w: generation.instances must be ≥ 1 (got %d)", ErrInvalidConfig, c.Generation.Instances)
	}
	if _, err := generator.ParseKind(c.Generation.DefaultKind); err != nil {
		return fmt.Errorf("%w: generation.default_kind: %w", ErrInvalidConfig, err)
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level must be one of %s (got %q)",
			ErrInvalidConfig, strings.Join(logging.ValidLevels(), ", "), c.Logging.Level)
	}
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/tsgen, falling back to ~/.config/tsgen.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tsgen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tsgen"
	}
	return filepath.Join(home, ".config", "tsgen")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
