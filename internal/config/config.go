package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	Data    DataConfig   `yaml:"data" json:"data"`
	Output  OutputConfig `yaml:"output" json:"output"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
	Log     LogConfig    `yaml:"log" json:"log"`
}

// DataConfig configures where the problem dataset is loaded from
type DataConfig struct {
	ScriptPath   string        `yaml:"script_path" json:"script_path"`     // injected data script
	FallbackPath string        `yaml:"fallback_path" json:"fallback_path"` // static JSON file or http(s) URL
	GlobalName   string        `yaml:"global_name" json:"global_name"`     // variable assigned in the script
	Watch        bool          `yaml:"watch" json:"watch"`                 // reload when files change
	FetchTimeout time.Duration `yaml:"fetch_timeout" json:"fetch_timeout"` // remote fallback only, 0 means no timeout
}

// OutputConfig configures batch output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Emoji         bool   `yaml:"emoji" json:"emoji"`                   // decorate text output
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// UIConfig configures the interactive browser
type UIConfig struct {
	Theme         string `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal
	Mouse         bool   `yaml:"mouse" json:"mouse"`                   // click cards and breadcrumbs
	AltScreen     bool   `yaml:"alt_screen" json:"alt_screen"`         // use the alternate screen buffer
	MarkdownStyle string `yaml:"markdown_style" json:"markdown_style"` // auto|dark|light|notty
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	// File receives log output while the browser owns the terminal.
	// Empty discards it.
	File string `yaml:"file" json:"file"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Data: DataConfig{
			ScriptPath:   "./data.js",
			FallbackPath: "./data.json",
			GlobalName:   "SIH_DATA",
			Watch:        false,
			FetchTimeout: 0, // loads never time out unless configured
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Emoji:         true,
			Verbose:       false,
		},
		UI: UIConfig{
			Theme:         "default",
			Mouse:         true,
			AltScreen:     true,
			MarkdownStyle: "auto",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateDataConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

// validateDataConfig validates dataset source configuration
func (c *Config) validateDataConfig() error {
	if c.Data.ScriptPath == "" && c.Data.FallbackPath == "" {
		return fmt.Errorf("at least one of data.script_path and data.fallback_path must be set")
	}
	if c.Data.ScriptPath != "" && c.Data.GlobalName == "" {
		return fmt.Errorf("data.global_name is required with data.script_path")
	}
	if strings.ContainsAny(c.Data.GlobalName, " \t\n.=;") {
		return fmt.Errorf("invalid global name: %q", c.Data.GlobalName)
	}
	if c.Data.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateUIConfig validates browser configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	if c.UI.MarkdownStyle != "" {
		validStyles := map[string]bool{
			"auto":  true,
			"dark":  true,
			"light": true,
			"notty": true,
		}
		if !validStyles[c.UI.MarkdownStyle] {
			return fmt.Errorf("invalid markdown style: %s (must be one of: auto, dark, light, notty)", c.UI.MarkdownStyle)
		}
	}
	return nil
}
