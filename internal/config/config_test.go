package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.Data.ScriptPath != "./data.js" {
		t.Errorf("Expected script path ./data.js, got %s", cfg.Data.ScriptPath)
	}
	if cfg.Data.FallbackPath != "./data.json" {
		t.Errorf("Expected fallback path ./data.json, got %s", cfg.Data.FallbackPath)
	}
	if cfg.Data.GlobalName != "SIH_DATA" {
		t.Errorf("Expected global name SIH_DATA, got %s", cfg.Data.GlobalName)
	}
	if cfg.Data.FetchTimeout != 0 {
		t.Errorf("Expected no fetch timeout by default, got %v", cfg.Data.FetchTimeout)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if !cfg.Output.Emoji || !cfg.UI.Mouse {
		t.Error("Expected emoji and mouse enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	withData := func(mutate func(c *Config)) *Config {
		c := DefaultConfig()
		mutate(c)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "no dataset source",
			config:  &Config{},
			wantErr: true,
			errMsg:  "at least one of data.script_path and data.fallback_path must be set",
		},
		{
			name:    "fallback only",
			config:  &Config{Data: DataConfig{FallbackPath: "https://example.com/data.json"}},
			wantErr: false,
		},
		{
			name:    "script without global",
			config:  withData(func(c *Config) { c.Data.GlobalName = "" }),
			wantErr: true,
			errMsg:  "data.global_name is required with data.script_path",
		},
		{
			name:    "dotted global",
			config:  withData(func(c *Config) { c.Data.GlobalName = "window.SIH_DATA" }),
			wantErr: true,
			errMsg:  `invalid global name: "window.SIH_DATA"`,
		},
		{
			name:    "negative timeout",
			config:  withData(func(c *Config) { c.Data.FetchTimeout = -time.Second }),
			wantErr: true,
			errMsg:  "fetch_timeout must be non-negative",
		},
		{
			name:    "invalid output format",
			config:  withData(func(c *Config) { c.Output.DefaultFormat = "invalid" }),
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			config:  withData(func(c *Config) { c.Output.ColorMode = "invalid" }),
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "invalid theme",
			config:  withData(func(c *Config) { c.UI.Theme = "neon" }),
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "invalid markdown style",
			config:  withData(func(c *Config) { c.UI.MarkdownStyle = "pink" }),
			wantErr: true,
			errMsg:  "invalid markdown style: pink (must be one of: auto, dark, light, notty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
				t.Fatalf("Sample config does not parse: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Sample config does not validate: %v", err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "./config.yaml",
			expected: "./config.yaml",
		},
		{
			name:     "absolute path",
			input:    "/etc/psbrowse/config.yaml",
			expected: "/etc/psbrowse/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := expandPath(tt.input); result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}

	t.Run("home directory path", func(t *testing.T) {
		t.Setenv("HOME", "/home/tester")
		if got := expandPath("~/.config/psbrowse/config.yaml"); got != "/home/tester/.config/psbrowse/config.yaml" {
			t.Errorf("Expected path to be expanded, got %s", got)
		}
	})
}

func TestGetConfigPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	paths := GetConfigPaths()
	expectedPaths := []string{
		"./.psbrowse.yaml",
		"/home/tester/.config/psbrowse/config.yaml",
		"/etc/psbrowse/config.yaml",
	}

	if len(paths) != len(expectedPaths) {
		t.Fatalf("Expected %d config paths, got %d", len(expectedPaths), len(paths))
	}
	for i, expectedPath := range expectedPaths {
		if paths[i] != expectedPath {
			t.Errorf("Expected path %s, got %s", expectedPath, paths[i])
		}
	}
}
