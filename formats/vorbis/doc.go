// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Channel Layout
//
// Vorbis fixes the speaker order for one to eight channels, so ChannelMap
// always reports a layout for those counts. A stream with more channels has
// no defined order and ChannelMap returns nil.
package vorbis
