// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	apperrors "github.com/zorak1103/bracecheck/internal/errors"
)

// Colour modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Common errors
var (
	Err = errors.New("config error")
)

// Config represents the application configuration
type Config struct {
	Target TargetConfig `mapstructure:"target"`
	Output OutputConfig `mapstructure:"output"`

	// ConfigFilePath stores the path to the loaded config file (not marshaled from YAML)
	ConfigFilePath string `mapstructure:"-"`
}

// TargetConfig names the file checked when no argument is given
type TargetConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig contains result output settings
type OutputConfig struct {
	Color      string `mapstructure:"color"`
	StrictExit bool   `mapstructure:"strict_exit"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bracecheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bracecheck")
		v.AddConfigPath("/etc/bracecheck")
	}

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := v.ConfigFileUsed()
			if configFile == "" {
				configFile = configPath
			}
			return nil, fmt.Errorf("error reading config file from %s: %w", configFile, err)
		}
		// Config file not found; using defaults and env vars
	}

	v.SetEnvPrefix("BRACECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		configFile := v.ConfigFileUsed()
		if configFile == "" {
			configFile = "(using defaults and environment variables)"
		}
		return nil, fmt.Errorf("error unmarshaling config from %s: %w", configFile, err)
	}

	cfg.ConfigFilePath = v.ConfigFileUsed()
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Required for AutomaticEnv to work
	v.SetDefault("target.path", "")

	v.SetDefault("output.color", ColorAuto)
	v.SetDefault("output.strict_exit", false)
}

// Validate ensures values are within valid ranges.
func (c *Config) Validate() error {
	configSource := c.ConfigFilePath
	if configSource == "" {
		configSource = "(defaults/environment)"
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &apperrors.ConfigurationError{
			ConfigPath: configSource,
			Key:        "output.color",
			Err:        fmt.Errorf("%w: must be one of auto, always, never, got %q", Err, c.Output.Color),
		}
	}

	return nil
}
