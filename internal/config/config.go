package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	DataFile    string `yaml:"data_file"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	CharLimit   int    `yaml:"char_limit"`
	Placeholder string `yaml:"placeholder"`
	ShowStats   bool   `yaml:"show_stats"`
}

// DataPath returns the article source with a leading "~/" expanded. Empty
// means the embedded sample articles.
func (c *Config) DataPath() string {
	return expandHome(c.DataFile)
}

// GetCharLimit returns the query length limit, defaulting to 100.
func (c *Config) GetCharLimit() int {
	if c.CharLimit <= 0 {
		return 100
	}
	return c.CharLimit
}

func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return expandHome(c.LogFile)
	}
	return filepath.Join(xdg.StateHome, "artsearch", "artsearch.log")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "artsearch", "config.yaml")
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(xdg.Home, p[2:])
	}
	return p
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (DefaultConfigPath when empty). Keys missing
// from the file keep their default values. A missing file is created from
// the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply.
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("log_level: unknown level %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}
	if cfg.CharLimit < 0 {
		return fmt.Errorf("char_limit: must not be negative, got %d", cfg.CharLimit)
	}
	if cfg.DataFile != "" {
		switch strings.ToLower(filepath.Ext(cfg.DataFile)) {
		case ".yaml", ".yml", ".xml", ".rss", ".atom", ".db", ".sqlite", ".sqlite3":
		default:
			return fmt.Errorf("data_file %q: unsupported extension (valid: yaml, yml, xml, rss, atom, db, sqlite, sqlite3)", cfg.DataFile)
		}
	}
	return nil
}
