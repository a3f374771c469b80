package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv(EnvConfigFile, "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopdocs.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	isolate(t)

	v, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Drawings.Root != `\\Hssieng\plp\shopdwgs` {
		t.Errorf("unexpected drawings root %q", cfg.Drawings.Root)
	}
	if cfg.Drawings.Preliminary != "Preliminary" {
		t.Errorf("unexpected preliminary dir %q", cfg.Drawings.Preliminary)
	}
	if cfg.Reports.Width != 5 {
		t.Errorf("expected width 5, got %d", cfg.Reports.Width)
	}
	if diff := cmp.Diff([]string{"PDF", "pdf"}, cfg.Extensions); diff != "" {
		t.Errorf("extensions mismatch (-want +got):\n%s", diff)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn log level, got %q", cfg.LogLevel)
	}
	if !cfg.History.Enabled || cfg.History.Limit != 500 {
		t.Errorf("unexpected history config %+v", cfg.History)
	}
	if !strings.HasSuffix(cfg.History.File, filepath.Join("shopdocs", "history.json")) {
		t.Errorf("unexpected history file %q", cfg.History.File)
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)

	path := writeConfig(t, `
drawings:
  root: /mnt/shopdwgs
  preliminary: Prelim
ereports:
  root: /mnt/ereports
  width: 0
extensions: [pdf]
handler: /usr/bin/evince
max_range: 10
log_level: DEBUG
history:
  enabled: false
`)

	v, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		Drawings:   DrawingsConfig{Root: "/mnt/shopdwgs", Preliminary: "Prelim"},
		Reports:    ReportsConfig{Root: "/mnt/ereports", Width: 0},
		Extensions: []string{"pdf"},
		Handler:    "/usr/bin/evince",
		MaxRange:   10,
		LogLevel:   "debug",
		History:    HistoryConfig{Enabled: false, File: cfg.History.File, Limit: 500},
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigFileFromEnvironment(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "ereports:\n  root: /srv/reports\n")
	t.Setenv(EnvConfigFile, path)

	v, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Reports.Root != "/srv/reports" {
		t.Errorf("expected root from %s, got %q", EnvConfigFile, cfg.Reports.Root)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "drawings:\n  root: /from/file\nmax_range: 10\n")
	t.Setenv("SHOPDOCS_DRAWINGS_ROOT", "/from/env")
	t.Setenv("SHOPDOCS_MAX_RANGE", "42")

	v, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Drawings.Root != "/from/env" {
		t.Errorf("expected env root, got %q", cfg.Drawings.Root)
	}
	if cfg.MaxRange != 42 {
		t.Errorf("expected max_range 42, got %d", cfg.MaxRange)
	}
}

func TestMissingExplicitConfigFile(t *testing.T) {
	isolate(t)
	if _, err := New(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Drawings:   DrawingsConfig{Root: "/d", Preliminary: "Preliminary"},
			Reports:    ReportsConfig{Root: "/r", Width: 5},
			Extensions: []string{"PDF"},
			MaxRange:   10,
			LogLevel:   "warn",
			History:    HistoryConfig{Enabled: true, File: "/h.json", Limit: 5},
		}
	}

	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty drawings root", func(c *Config) { c.Drawings.Root = "" }, "drawings.root"},
		{"empty ereports root", func(c *Config) { c.Reports.Root = "" }, "ereports.root"},
		{"negative width", func(c *Config) { c.Reports.Width = -1 }, "ereports.width"},
		{"no extensions", func(c *Config) { c.Extensions = nil }, "extensions"},
		{"blank extension", func(c *Config) { c.Extensions = []string{"."} }, "extensions"},
		{"zero max range", func(c *Config) { c.MaxRange = 0 }, "max_range"},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"history without file", func(c *Config) { c.History.File = "" }, "history.file"},
		{"history without limit", func(c *Config) { c.History.Limit = 0 }, "history.limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	t.Run("disabled history skips history checks", func(t *testing.T) {
		cfg := valid()
		cfg.History = HistoryConfig{Enabled: false}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
