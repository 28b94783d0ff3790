// Package config holds run settings. Defaults reproduce the fixed run
// (five zooplus result pages into veterinarians.csv); a YAML file may
// override any of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingSite     = errors.New("site is required")
	ErrInvalidPages    = errors.New("pages must be at least 1")
	ErrInvalidWait     = errors.New("wait timeouts must be positive")
	ErrMissingOutput   = errors.New("output.name is required")
	ErrInvalidFormat   = errors.New("output.format must be one of: csv, json, markdown, text, html")
	ErrInvalidLogLevel = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidNavigate = errors.New("browser.navigate_timeout must be non-negative")
)

// Config is the complete run configuration.
type Config struct {
	Site    string        `yaml:"site"`
	URL     string        `yaml:"url"`
	Pages   int           `yaml:"pages"`
	Wait    WaitConfig    `yaml:"wait"`
	Browser BrowserConfig `yaml:"browser"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// WaitConfig bounds how long each page may take to render its listings.
type WaitConfig struct {
	FirstPage time.Duration `yaml:"first_page"`
	NextPage  time.Duration `yaml:"next_page"`
}

// BrowserConfig controls the launched Chromium.
type BrowserConfig struct {
	ShowUI          bool          `yaml:"show_ui"`
	ProxyURL        string        `yaml:"proxy_url"`
	NavigateTimeout time.Duration `yaml:"navigate_timeout"`
}

// OutputConfig names the result file. The extension follows the format.
type OutputConfig struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Site:  "zooplus",
		URL:   "https://www.zooplus.de/tierarzt/results?animal_99=true",
		Pages: 5,
		Wait: WaitConfig{
			FirstPage: 10 * time.Second,
			NextPage:  15 * time.Second,
		},
		Browser: BrowserConfig{
			NavigateTimeout: 60 * time.Second,
		},
		Output: OutputConfig{
			Name:   "veterinarians",
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "parser.log",
		},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Site == "" {
		return ErrMissingSite
	}

	if c.Pages < 1 {
		return ErrInvalidPages
	}

	if c.Wait.FirstPage <= 0 || c.Wait.NextPage <= 0 {
		return ErrInvalidWait
	}

	if c.Browser.NavigateTimeout < 0 {
		return ErrInvalidNavigate
	}

	if c.Output.Name == "" {
		return ErrMissingOutput
	}

	validFormats := map[string]bool{"csv": true, "json": true, "markdown": true, "text": true, "html": true}
	if !validFormats[c.Output.Format] {
		return ErrInvalidFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a short summary of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Site: %s, Pages: %d, Output: %s.%s}", c.Site, c.Pages, c.Output.Name, c.Output.Format)
}
