package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Pages != 5 {
		t.Errorf("expected 5 pages, got %d", cfg.Pages)
	}
	if cfg.Wait.FirstPage != 10*time.Second || cfg.Wait.NextPage != 15*time.Second {
		t.Errorf("expected 10s/15s waits, got %s/%s", cfg.Wait.FirstPage, cfg.Wait.NextPage)
	}
	if cfg.Output.Name != "veterinarians" || cfg.Output.Format != "csv" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
pages: 2
wait:
  next_page: 20s
output:
  name: out/vets
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Pages != 2 {
		t.Errorf("expected 2 pages, got %d", cfg.Pages)
	}
	if cfg.Wait.NextPage != 20*time.Second {
		t.Errorf("expected next page wait 20s, got %s", cfg.Wait.NextPage)
	}
	if cfg.Wait.FirstPage != 10*time.Second {
		t.Errorf("expected first page wait to keep default, got %s", cfg.Wait.FirstPage)
	}
	if cfg.Output.Name != "out/vets" || cfg.Output.Format != "csv" {
		t.Errorf("unexpected output: %+v", cfg.Output)
	}
	if cfg.Site != "zooplus" {
		t.Errorf("expected default site, got %s", cfg.Site)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := LoadConfig(writeConfig(t, "pages: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}

	_, err := LoadConfig(writeConfig(t, "pages: 0\n"))
	if !errors.Is(err, ErrInvalidPages) {
		t.Errorf("expected ErrInvalidPages, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"no site", func(c *Config) { c.Site = "" }, ErrMissingSite},
		{"zero pages", func(c *Config) { c.Pages = 0 }, ErrInvalidPages},
		{"zero first wait", func(c *Config) { c.Wait.FirstPage = 0 }, ErrInvalidWait},
		{"negative next wait", func(c *Config) { c.Wait.NextPage = -time.Second }, ErrInvalidWait},
		{"negative navigate", func(c *Config) { c.Browser.NavigateTimeout = -1 }, ErrInvalidNavigate},
		{"no output", func(c *Config) { c.Output.Name = "" }, ErrMissingOutput},
		{"bad format", func(c *Config) { c.Output.Format = "xlsx" }, ErrInvalidFormat},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
