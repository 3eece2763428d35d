// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into audio.Source streams.
//
// Integer PCM at 8, 16, 24 and 32 bits is decoded through go-audio/wav.
// Before decoding, the RIFF chunks are scanned once to pick up what go-audio
// does not expose: the WAVE_FORMAT_EXTENSIBLE speaker mask, which becomes the
// source's ChannelMap, and the data chunk size, which becomes Frames.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// IEEE float files are rejected with ErrFloatNotSupported.
//
// WriteWAV16 and WriteMultiWAV16 produce canonical 44-byte-header PCM files,
// mostly useful for fixtures.
package wav
