package config

import (
	"os"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Port:          "3000",
		DBPath:        "songbox.db",
		UploadsDir:    "public/img",
		AllowedOrigin: "http://localhost:3001",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore, os.Unsetenv makes the var truly unset
	for _, key := range []string{"PORT", "DB_PATH", "UPLOADS_DIR", "FRONTEND_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %q", cfg.Port)
	}
	if cfg.DBPath != "songbox.db" {
		t.Errorf("Expected default db path songbox.db, got %q", cfg.DBPath)
	}
	if cfg.UploadsDir != "public/img" {
		t.Errorf("Expected default uploads dir public/img, got %q", cfg.UploadsDir)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("Expected default logging info/text, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected PORT 8080, got %q", cfg.Port)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("Expected DB_PATH /tmp/test.db, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LOG_LEVEL debug, got %q", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Expected valid config to pass, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"empty port", func(c *Config) { c.Port = "" }, "PORT cannot be empty"},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, "PORT must be a valid number"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "PORT must be between"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "DB_PATH cannot be empty"},
		{"empty uploads dir", func(c *Config) { c.UploadsDir = "" }, "UPLOADS_DIR cannot be empty"},
		{"empty origin", func(c *Config) { c.AllowedOrigin = "" }, "FRONTEND_URL cannot be empty"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "LOG_LEVEL must be one of"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	cfg.DBPath = ""
	cfg.LogLevel = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"PORT", "DB_PATH", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected combined error to mention %s, got %v", want, err)
		}
	}
}
