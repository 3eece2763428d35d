// SPDX-License-Identifier: EPL-2.0

package r128scan

import (
	"log/slog"

	"github.com/ik5/r128scan/batch"
	"github.com/ik5/r128scan/formats"
)

// Scan measures the files at paths with the bundled decoders.
//
// The report lists every file in input order. If any file could not be
// measured the error wraps batch.ErrPartialFailure and the album figures are
// left out. logger may be nil.
func Scan(paths []string, cfg batch.Config, logger *slog.Logger) (*batch.Report, error) {
	return batch.NewAnalyzer(formats.NewOpener(), logger).Analyze(paths, cfg)
}

// SupportedFormats lists the file extensions Scan understands.
func SupportedFormats() []string {
	return formats.NewRegistry().Formats()
}
