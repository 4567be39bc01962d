// Package config provides Viper-based configuration loading for tinyworld.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// TINYWORLD_LOGGING_LEVEL=debug.
const EnvPrefix = "TINYWORLD"

// GameConfig holds session settings.
type GameConfig struct {
	// Seed drives every random roll. 0 means a time-based seed.
	Seed int64 `mapstructure:"seed"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a file path, or "stdout"/"stderr". The terminal UI owns
	// the screen, so the default is a file.
	Output string `mapstructure:"output"`
}

// TelemetryConfig holds OpenTelemetry exporter settings.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Dataset  string `mapstructure:"dataset"`
}

// Config is the top-level application configuration.
type Config struct {
	Game      GameConfig      `mapstructure:"game"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTelemetry(c.Telemetry); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	if !t.Enabled {
		return nil
	}
	if t.Endpoint == "" {
		return errors.New("telemetry.endpoint must not be empty when telemetry is enabled")
	}
	return nil
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables override the file, which overrides defaults.
// An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "tinyworld.log")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "https://api.honeycomb.io")
	v.SetDefault("telemetry.api_key", "")
	v.SetDefault("telemetry.dataset", "tinyworld")
}
