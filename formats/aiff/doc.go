// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Signed PCM at 8, 16, 24 and 32 bits is supported, with any channel count
// and sample rate. Frames reports the COMM chunk's sample frame count.
//
// AIFF carries no speaker layout, so ChannelMap is always nil and the
// analyzer falls back to its positional defaults.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Readers that cannot seek are buffered into memory first, because
// go-audio needs to move between chunks.
package aiff
