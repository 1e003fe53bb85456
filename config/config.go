package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. Without an explicit path a missing
// config file is not an error and the defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".jsonreq"))
		}

		// Check /etc
		v.AddConfigPath("/etc/jsonreq/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Request defaults
	v.SetDefault("request.encode", true)
	v.SetDefault("request.default_count", 10)
	v.SetDefault("request.default_page", 0)
	v.SetDefault("request.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateLogLevel reports whether level is one of debug, info, warn or error.
func ValidateLogLevel(level string) error {
	if !validLevels[level] {
		return fmt.Errorf("invalid logging level: %s", level)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Request.DefaultCount < 0 {
		return fmt.Errorf("request.default_count must not be negative: %d", cfg.Request.DefaultCount)
	}
	if cfg.Request.DefaultPage < 0 {
		return fmt.Errorf("request.default_page must not be negative: %d", cfg.Request.DefaultPage)
	}
	if cfg.Request.Concurrency < 1 {
		return fmt.Errorf("request.concurrency must be at least 1: %d", cfg.Request.Concurrency)
	}

	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, p := range cfg.Presets {
		if p.Array == nil && p.Tag == "" && len(p.Entries) == 0 {
			return fmt.Errorf("preset %s is empty", name)
		}
	}

	return nil
}
