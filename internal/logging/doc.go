// Package logging builds the slog logger used across r128scan.
//
// Records go to stderr by default so that results on stdout stay clean for
// piping. The "auto" format writes human readable text to a terminal and
// JSON everywhere else.
package logging
