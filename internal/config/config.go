// Package config handles configuration loading for weather-banner. It
// supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	DataDir string        `mapstructure:"data_dir" yaml:"data_dir"`
	NOAA    NOAAConfig    `mapstructure:"noaa"     yaml:"noaa"`
	Render  RenderConfig  `mapstructure:"render"   yaml:"render"`
	Logging LoggingConfig `mapstructure:"logging"  yaml:"logging"`
}

// NOAAConfig holds upstream archive settings.
type NOAAConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// RenderConfig holds banner rendering defaults. Flags override these per
// invocation.
type RenderConfig struct {
	Width      int  `mapstructure:"width"      yaml:"width"`
	Height     int  `mapstructure:"height"     yaml:"height"`
	Downsample int  `mapstructure:"downsample" yaml:"downsample"`
	Smooth     bool `mapstructure:"smooth"     yaml:"smooth"`
	Debug      bool `mapstructure:"debug"      yaml:"debug"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config.yaml (working directory)
//  2. ~/.weather-banner/config.yaml (home directory)
//
// Environment variables override config file values.
// Format: WEATHER_BANNER_<SECTION>_<KEY>, e.g. WEATHER_BANNER_DATA_DIR
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".weather-banner"))

	v.SetEnvPrefix("WEATHER_BANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("WEATHER_BANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")

	v.SetDefault("noaa.base_url", "https://www.ncei.noaa.gov/data/global-summary-of-the-day/archive/")

	v.SetDefault("render.width", 1600)
	v.SetDefault("render.height", 600)
	v.SetDefault("render.downsample", 3)
	v.SetDefault("render.smooth", true)
	v.SetDefault("render.debug", false)

	v.SetDefault("logging.level", "info")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
