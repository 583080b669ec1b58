package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Computation modes
const (
	ModeClamp  = "clamp"  // out-of-range days clamp to the month's last day
	ModeStrict = "strict" // out-of-range days are rejected
)

// Output formats
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Config represents application configuration
type Config struct {
	Mode   string       `mapstructure:"mode"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig represents result formatting configuration
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Newline bool   `mapstructure:"newline"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty means console logging
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. An explicit path must exist;
// with an empty path the default search locations are tried and a
// missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("mode", ModeClamp)
	v.SetDefault("output.format", FormatPlain)
	v.SetDefault("output.newline", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.dayofyear")
		v.AddConfigPath("/etc/dayofyear")
	}

	// Read environment variables (DAYOFYEAR_MODE, DAYOFYEAR_OUTPUT_FORMAT, ...)
	v.SetEnvPrefix("DAYOFYEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No file on the search path: defaults and env apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeClamp, ModeStrict:
	default:
		return fmt.Errorf("mode must be '%s' or '%s', got '%s'", ModeClamp, ModeStrict, c.Mode)
	}

	switch c.Output.Format {
	case FormatPlain, FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", FormatPlain, FormatJSON, c.Output.Format)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}
