package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config with string durations and optional ints so that
// absent keys can be told apart from zero.
type FileConfig struct {
	Target      string `toml:"target" yaml:"target"`
	Encoding    string `toml:"encoding" yaml:"encoding"`
	WindowStart *int   `toml:"window_start" yaml:"window_start"`
	WindowEnd   *int   `toml:"window_end" yaml:"window_end"`
	WindowWidth *int   `toml:"window_width" yaml:"window_width"`
	MatchWidth  *int   `toml:"match_width" yaml:"match_width"`
	Watch       *bool  `toml:"watch" yaml:"watch"`
	Debounce    string `toml:"debounce" yaml:"debounce"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml %s: %w", path, err)
		}
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.escscan/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".escscan", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to cfg, skipping any
// value whose flag was explicitly set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("target", fc.Target, &cfg.Target)
	s.setString("encoding", fc.Encoding, &cfg.Encoding)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("window-start", fc.WindowStart, &cfg.WindowStart)
	s.setInt("window-end", fc.WindowEnd, &cfg.WindowEnd)
	s.setInt("window-width", fc.WindowWidth, &cfg.WindowWidth)
	s.setInt("match-width", fc.MatchWidth, &cfg.MatchWidth)

	s.setBool("watch", fc.Watch, &cfg.Watch)

	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
