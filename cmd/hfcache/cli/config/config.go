package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the hfcache CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Cache CacheConfig `mapstructure:"cache"`
	Log   LogConfig   `mapstructure:"log"`
}

// CacheConfig holds cache-related settings.
type CacheConfig struct {
	// Dir overrides the scanned cache directory.
	Dir string `mapstructure:"dir"`
}

// LogConfig holds diagnostic settings.
type LogConfig struct {
	// Level is the minimum diagnostic level (debug, info, warn, error).
	Level string `mapstructure:"level"`
}

// Load reads the config file from the XDG config directory.
// A missing file yields the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())
	v.SetDefault("log.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
