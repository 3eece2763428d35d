// SPDX-License-Identifier: EPL-2.0

// Package formats wires the bundled decoders (WAV, AIFF, MP3, Ogg Vorbis and
// FLAC) into an audio.Registry and opens files through it.
//
//	src, err := formats.NewOpener().Open("album/01.flac")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
package formats
