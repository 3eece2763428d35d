// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"auto", "console", "json"}
	outputs    = []string{"auto", "lines", "table", "json"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return errors.New("concurrency must be zero (one per CPU) or positive")
	}
	if !slices.Contains(outputs, c.Output) {
		return fmt.Errorf("output: unsupported value %q", c.Output)
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("log level: unsupported value %q", c.Logging.Level)
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("log format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
