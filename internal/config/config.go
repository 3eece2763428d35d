// SPDX-License-Identifier: EPL-2.0

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ik5/r128scan/batch"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full r128scan configuration.
type Config struct {
	CalculateRange bool    `toml:"calculate_range"`
	TagGain        bool    `toml:"tag_gain"`
	TruePeak       bool    `toml:"true_peak"`
	Concurrency    int     `toml:"concurrency"`
	Output         string  `toml:"output"`
	Logging        Logging `toml:"log"`
}

// DefaultConfigPath is where Load looks when no path is given.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "r128scan", "config.toml"), nil
}

// Load reads, normalizes and validates the configuration. An empty path
// falls back to DefaultConfigPath and then to built-in defaults; an explicit
// path must exist. It returns the path that was read and whether a file was
// found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return path, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		// No home directory: run on defaults
		return "", false, nil
	}
	info, err := os.Stat(defaultPath)
	switch {
	case err == nil && !info.IsDir():
		return defaultPath, true, nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return defaultPath, false, nil
	default:
		return "", false, fmt.Errorf("stat config: %w", err)
	}
}

// Batch returns the analyzer settings.
func (c *Config) Batch() batch.Config {
	return batch.Config{
		CalculateRange: c.CalculateRange,
		TagGain:        c.TagGain,
		TruePeak:       c.TruePeak,
		Concurrency:    c.Concurrency,
	}
}

// CreateSample writes a commented sample configuration to path. Existing
// files are left alone.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(sampleConfig); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
