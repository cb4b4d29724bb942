// Package config loads the editor settings from a TOML file and the
// command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/thimc/led/internal/logger"
)

const (
	AppName               = "led"
	DefaultConfigFileName = "config.toml"
	DefaultLogLevel       = "info"
)

// Config holds the combined configuration.
type Config struct {
	Editor EditorConfig  `toml:"editor"`
	Logger logger.Config `toml:"logger"`
}

// EditorConfig holds editor specific settings.
type EditorConfig struct {
	Prompt  string `toml:"prompt"`  // prompt shown on interactive terminals
	Verbose bool   `toml:"verbose"` // start with verbose errors
	Silent  bool   `toml:"silent"`  // suppress byte counts
}

// NewDefaultConfig returns a Config holding the default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{Level: DefaultLogLevel},
	}
}

// DefaultPath returns the default location of the configuration file,
// or an empty string if it cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// LoadFile decodes the file at path on top of cfg. A missing file is
// not an error. The returned keys were present in the file but not
// understood.
func LoadFile(cfg *Config, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

func (c *Config) validate() {
	if c.Logger.Level == "" {
		c.Logger.Level = DefaultLogLevel
	}
}

// Load builds the configuration from the defaults, the config file
// and the flags, in that order of precedence. If the file cannot be
// parsed the returned Config still holds the defaults and the flags.
func Load(flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()
	path := flags.ConfigFilePath
	if path == "" {
		path = DefaultPath()
	}
	fileCfg := NewDefaultConfig()
	undecoded, err := LoadFile(fileCfg, path)
	if err == nil {
		cfg = fileCfg
	}
	flags.ApplyOverrides(cfg)
	cfg.validate()
	return cfg, undecoded, err
}
