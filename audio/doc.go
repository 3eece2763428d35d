// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoding contract shared by every container format.
//
// This package contains the building blocks the loudness analyzer reads through:
//   - Source interface for decoded audio input
//   - Decoder interface turning a byte stream into a Source
//   - Format registry for decoder registration
//   - ChannelTag describing the speaker layout of a stream
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() int64
//	    ChannelMap() []ChannelTag
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Frames is the frame count the container declares; -1 means the container
// does not state one. Analyzers compare it with the frames actually read to
// detect truncated files.
//
// ChannelMap returns one tag per channel when the container carries a
// layout (WAVE_FORMAT_EXTENSIBLE masks, the fixed FLAC and Vorbis orders)
// and nil otherwise.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("WAV")
//
// Keys are case-insensitive so file extensions can be used directly.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// A read that returns zero samples ends the stream. Sources may also return
// io.EOF together with the final samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if n == 0 || err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
