package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CLIConfig is the shape of an .odds.yaml configuration file, loaded by
// cmd/odds before it analyzes any source file.
type CLIConfig struct {
	// Color overrides isatty autodetection when non-nil: true always
	// colors diagnostics, false never does.
	Color *bool `yaml:"color,omitempty"`

	// CacheDir is where internal/cache stores its sqlite database.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// Strict is reserved for a future "treat diagnostics as build errors
	// even in -print mode" toggle; it is parsed and carried today but does
	// not yet change analyzer behavior.
	Strict bool `yaml:"strict,omitempty"`

	// Prelude lists additional built-in names seeded into the root
	// environment (internal/analyzer.Options.ExtraPrelude), beyond the
	// default EUL/PI/print of spec.md §3.
	Prelude []string `yaml:"prelude,omitempty"`
}

const defaultCacheDir = ".odds-cache"

// DefaultCLIConfig is what a CLI run uses when no .odds.yaml is found.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{CacheDir: defaultCacheDir}
}

// Load reads and parses an .odds.yaml file at path.
func Load(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *CLIConfig) setDefaults() {
	if c.CacheDir == "" {
		c.CacheDir = defaultCacheDir
	}
}

// Find looks for .odds.yaml in dir, then $HOME, returning "" if neither
// has one. explicit, when non-empty (the CLI's --config flag), is returned
// as-is without checking for existence — a missing --config path is the
// caller's error to report, not something Find should silently paper over.
func Find(dir, explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := filepath.Join(dir, ".odds.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".odds.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
