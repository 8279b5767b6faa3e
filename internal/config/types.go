package config

import (
	"time"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
)

// DefaultTimeout bounds a single dictionary request.
const DefaultTimeout = 15 * time.Second

// Config is the top-level wordbook configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServiceConfig describes how the dictionary service is reached.
type ServiceConfig struct {
	BaseURL   string        `yaml:"base_url" validate:"required,service_url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	Retries   int           `yaml:"retries" validate:"gte=0,lte=5"`
	RateLimit float64       `yaml:"rate_limit" validate:"gte=0"`
	Burst     int           `yaml:"burst" validate:"gte=0"`
}

// StorageConfig overrides where session and durable state live. Empty
// values use the platform defaults.
type StorageConfig struct {
	SessionDir string `yaml:"session_dir" validate:"omitempty,abs_path"`
	DataDir    string `yaml:"data_dir" validate:"omitempty,abs_path"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"log_level"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file" validate:"omitempty,abs_path"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL: dictionary.DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
