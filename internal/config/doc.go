// Package config loads, normalizes, and validates r128scan configuration.
//
// Settings come from built-in defaults, optionally overlaid by a TOML file
// (by default under the user config directory) and R128SCAN_LOG_LEVEL.
// Unknown keys are rejected so typos surface instead of being ignored.
package config
