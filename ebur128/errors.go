// SPDX-License-Identifier: EPL-2.0

package ebur128

import "errors"

var (
	ErrInvalidChannels     = errors.New("channel count out of range")
	ErrInvalidSampleRate   = errors.New("sample rate out of range")
	ErrInvalidChannelIndex = errors.New("channel index out of range")
	ErrInvalidFrameCount   = errors.New("frame count exceeds buffer")
	ErrNonFiniteSample     = errors.New("sample is NaN or infinite")
	ErrInvalidMode         = errors.New("measurement not enabled for this state")
)
