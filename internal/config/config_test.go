package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Port:              "8081",
		DataBackend:       "sqlite",
		SQLiteDBPath:      filepath.Join(t.TempDir(), "budget.db"),
		ClassifierURL:     "http://localhost:8000",
		ClassifierTimeout: 30 * time.Second,
		LogLevel:          "info",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DataBackend = "postgres" }, "invalid data backend"},
		{"empty sqlite path", func(c *Config) { c.SQLiteDBPath = "" }, "database path cannot be empty"},
		{"empty classifier url", func(c *Config) { c.ClassifierURL = "" }, "classifier URL cannot be empty"},
		{"bad classifier scheme", func(c *Config) { c.ClassifierURL = "ftp://host" }, "invalid classifier URL scheme"},
		{"timeout too small", func(c *Config) { c.ClassifierTimeout = 10 * time.Millisecond }, "invalid classifier timeout"},
		{"timeout too large", func(c *Config) { c.ClassifierTimeout = time.Hour }, "invalid classifier timeout"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidateAggregatesAllErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Port = "abc"
	cfg.DataBackend = "postgres"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "invalid log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error should mention %q, got %q", want, err.Error())
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("unexpected default port %q", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("unexpected default backend %q", cfg.DataBackend)
	}
	if cfg.ClassifierTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.ClassifierTimeout)
	}
}
