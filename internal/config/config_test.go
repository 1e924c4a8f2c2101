package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.DataFile != "" {
		t.Errorf("expected empty data_file by default, got %q", cfg.DataFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log_level info, got %q", cfg.LogLevel)
	}
	if cfg.CharLimit != 100 {
		t.Errorf("expected char_limit 100, got %d", cfg.CharLimit)
	}
	if !cfg.ShowStats {
		t.Error("expected show_stats to default to true")
	}
	if cfg.Placeholder == "" {
		t.Error("expected a default placeholder")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults do not validate: %v", err)
	}
}

func TestGetCharLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, 100},
		{-5, 100},
		{40, 40},
	}
	for _, tt := range tests {
		cfg := &Config{CharLimit: tt.limit}
		if got := cfg.GetCharLimit(); got != tt.want {
			t.Errorf("GetCharLimit() with %d = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestLogPath(t *testing.T) {
	cfg := &Config{}
	want := filepath.Join(xdg.StateHome, "artsearch", "artsearch.log")
	if got := cfg.LogPath(); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}

	cfg.LogFile = "/tmp/x.log"
	if got := cfg.LogPath(); got != "/tmp/x.log" {
		t.Errorf("LogPath() = %q, want /tmp/x.log", got)
	}
}

func TestDataPathExpandsHome(t *testing.T) {
	cfg := &Config{DataFile: "~/articles.yaml"}
	want := filepath.Join(xdg.Home, "articles.yaml")
	if got := cfg.DataPath(); got != want {
		t.Errorf("DataPath() = %q, want %q", got, want)
	}

	cfg.DataFile = "rel/articles.yaml"
	if got := cfg.DataPath(); got != "rel/articles.yaml" {
		t.Errorf("DataPath() = %q, want unchanged relative path", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `data_file: /srv/articles.db
log_level: debug
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "/srv/articles.db" {
		t.Errorf("expected data_file /srv/articles.db, got %s", cfg.DataFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %s", cfg.LogLevel)
	}
	// Keys absent from the file keep their defaults
	if cfg.CharLimit != 100 {
		t.Errorf("expected default char_limit, got %d", cfg.CharLimit)
	}
	if !cfg.ShowStats {
		t.Error("expected default show_stats to survive a partial config")
	}
}

func TestLoadOverridesBool(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("show_stats: false\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ShowStats {
		t.Error("expected show_stats false")
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CharLimit != 100 {
		t.Errorf("expected defaults when config doesn't exist, got char_limit %d", cfg.CharLimit)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("expected defaults written to %s: %v", cfgPath, err)
	}
	if !strings.Contains(string(data), "show_stats") {
		t.Errorf("written config missing show_stats: %s", data)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("char_limit: [oops\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "error", ""} {
		if err := validate(&Config{LogLevel: lvl}); err != nil {
			t.Errorf("validate(%q): unexpected error: %v", lvl, err)
		}
	}
	if err := validate(&Config{LogLevel: "verbose"}); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestValidateCharLimit(t *testing.T) {
	if err := validate(&Config{CharLimit: -1}); err == nil {
		t.Error("expected error for negative char_limit")
	}
}

func TestValidateDataFile(t *testing.T) {
	valid := []string{"a.yaml", "a.yml", "feed.xml", "feed.RSS", "x.atom", "a.db", "a.sqlite", "a.sqlite3"}
	for _, f := range valid {
		if err := validate(&Config{DataFile: f}); err != nil {
			t.Errorf("validate(data_file=%q): unexpected error: %v", f, err)
		}
	}
	if err := validate(&Config{DataFile: "articles.csv"}); err == nil {
		t.Error("expected error for csv data_file")
	}
}
