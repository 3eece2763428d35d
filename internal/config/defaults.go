// SPDX-License-Identifier: EPL-2.0

package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
	defaultOutput    = "auto"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: defaultOutput,
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
