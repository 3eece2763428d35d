// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	ErrOpen       = errors.New("could not open track")
	ErrInit       = errors.New("could not initialize loudness state")
	ErrAllocation = errors.New("block buffer too large")
	ErrRead       = errors.New("could not read samples")
	ErrFeed       = errors.New("loudness state rejected samples")

	// ErrPartialFrame is the read cause when a decoder returns a sample
	// count that does not split into whole frames.
	ErrPartialFrame = errors.New("partial frame")

	// ErrUnderRead marks a track whose decoder delivered a different number
	// of frames than its container declared. It is a warning: the track is
	// still measured.
	ErrUnderRead = errors.New("frame count differs from declared length")

	ErrPartialFailure = errors.New("not all tracks could be measured")
)
