// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse the bitstream. Samples
// of any bit depth from 4 to 32 bits are scaled to float32 in [-1.0, 1.0)
// and interleaved frame by frame.
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//
// The FLAC format fixes the speaker order for up to eight channels, which
// ChannelMap reports. Frames is -1 when the stream info leaves the total
// sample count unset.
package flac
