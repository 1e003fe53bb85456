package config

import "github.com/s0up4200/jsonreq/preset"

// Config represents the complete configuration structure
type Config struct {
	Request RequestConfig            `mapstructure:"request"`
	Presets map[string]preset.Preset `mapstructure:"presets"`
	Logging LoggingConfig            `mapstructure:"logging"`
}

// RequestConfig holds the defaults applied while building requests
type RequestConfig struct {
	// Encode percent-encodes string values unless an entry is marked raw
	Encode       bool `mapstructure:"encode"`
	DefaultCount int  `mapstructure:"default_count"`
	DefaultPage  int  `mapstructure:"default_page"`
	// Concurrency bounds how many presets are built at once
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
