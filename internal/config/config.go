package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	Addr         string
	BaseURL      string
	ListLimit    int
	ExportLimit  int
	LabelPresets string
	LogLevel     string
	LogFile      string
}

func Load() *Config {
	return &Config{
		Addr:         getEnv("HTTP_ADDR", ":8001"),
		BaseURL:      strings.TrimRight(getEnv("BASE_URL", "http://localhost:8001"), "/"),
		ListLimit:    500,
		ExportLimit:  100000,
		LabelPresets: getEnv("LABEL_PRESETS", "configs/labels.yaml"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
	}
}

// Validate checks the configuration for common errors
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL must not be empty")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}
	if c.ListLimit <= 0 || c.ExportLimit <= 0 {
		return fmt.Errorf("list and export limits must be positive")
	}
	return nil
}

// LoadAndValidate loads the configuration and validates it
func LoadAndValidate() (*Config, error) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
