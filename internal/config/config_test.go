package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Unsetenv("HTTP_ADDR")
	os.Unsetenv("BASE_URL")
	os.Unsetenv("LABEL_PRESETS")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FILE")

	cfg := Load()

	if cfg.Addr != ":8001" {
		t.Errorf("Expected default HTTP_ADDR, got %s", cfg.Addr)
	}
	if cfg.BaseURL != "http://localhost:8001" {
		t.Errorf("Expected default BASE_URL, got %s", cfg.BaseURL)
	}
	if cfg.ListLimit != 500 {
		t.Errorf("Expected list limit 500, got %d", cfg.ListLimit)
	}
	if cfg.ExportLimit != 100000 {
		t.Errorf("Expected export limit 100000, got %d", cfg.ExportLimit)
	}
	if cfg.LabelPresets != "configs/labels.yaml" {
		t.Errorf("Expected default LABEL_PRESETS, got %s", cfg.LabelPresets)
	}
}

func TestLoadWithEnvironment(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9000")
	os.Setenv("BASE_URL", "http://192.168.8.20:9000/")
	os.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Addr != ":9000" {
		t.Errorf("Expected HTTP_ADDR from env, got %s", cfg.Addr)
	}
	// trailing slash is stripped so URL joins stay clean
	if cfg.BaseURL != "http://192.168.8.20:9000" {
		t.Errorf("Expected trimmed BASE_URL from env, got %s", cfg.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LOG_LEVEL from env, got %s", cfg.LogLevel)
	}

	os.Unsetenv("HTTP_ADDR")
	os.Unsetenv("BASE_URL")
	os.Unsetenv("LOG_LEVEL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name: "valid config",
			config: &Config{
				Addr:        ":8001",
				BaseURL:     "http://localhost:8001",
				ListLimit:   500,
				ExportLimit: 100000,
			},
			expectError: false,
		},
		{
			name: "empty addr",
			config: &Config{
				BaseURL:     "http://localhost:8001",
				ListLimit:   500,
				ExportLimit: 100000,
			},
			expectError: true,
		},
		{
			name: "empty base URL",
			config: &Config{
				Addr:        ":8001",
				ListLimit:   500,
				ExportLimit: 100000,
			},
			expectError: true,
		},
		{
			name: "relative base URL",
			config: &Config{
				Addr:        ":8001",
				BaseURL:     "localhost:8001",
				ListLimit:   500,
				ExportLimit: 100000,
			},
			expectError: true,
		},
		{
			name: "zero limits",
			config: &Config{
				Addr:    ":8001",
				BaseURL: "http://localhost:8001",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.expectError {
				t.Errorf("Validate() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	os.Setenv("BASE_URL", "http://inventory.local")
	cfg, err := LoadAndValidate()
	if err != nil {
		t.Errorf("LoadAndValidate() failed with valid config: %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadAndValidate() returned nil config")
	}

	os.Setenv("BASE_URL", "not a url")
	if _, err := LoadAndValidate(); err == nil {
		t.Error("LoadAndValidate() should fail with invalid BASE_URL")
	}

	os.Unsetenv("BASE_URL")
}
