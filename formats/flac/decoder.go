// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/r128scan/audio"
	"github.com/mewkiz/flac"
)

// Channel order fixed by the FLAC format for one to eight channels
var layouts = map[int][]audio.ChannelTag{
	1: {audio.ChannelMono},
	2: {audio.ChannelFrontLeft, audio.ChannelFrontRight},
	3: {audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter},
	4: {audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelRearLeft, audio.ChannelRearRight},
	5: {
		audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
		audio.ChannelRearLeft, audio.ChannelRearRight,
	},
	6: {
		audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
		audio.ChannelLFE, audio.ChannelRearLeft, audio.ChannelRearRight,
	},
	7: {
		audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
		audio.ChannelLFE, audio.ChannelRearCenter, audio.ChannelSideLeft, audio.ChannelSideRight,
	},
	8: {
		audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
		audio.ChannelLFE, audio.ChannelRearLeft, audio.ChannelRearRight,
		audio.ChannelSideLeft, audio.ChannelSideRight,
	},
}

// frameReader yields one decoded FLAC frame at a time as per-channel
// sample slices. It exists so tests can feed frames without a bitstream.
type frameReader interface {
	Next() ([][]int32, error)
}

// streamReader adapts *flac.Stream to frameReader.
type streamReader struct {
	stream *flac.Stream
}

func (r streamReader) Next() ([][]int32, error) {
	f, err := r.stream.ParseNext()
	if err != nil {
		return nil, err
	}
	out := make([][]int32, len(f.Subframes))
	for i, sub := range f.Subframes {
		out[i] = sub.Samples
	}
	return out, nil
}

type source struct {
	dec        frameReader
	sampleRate int
	channels   int
	frames     int64
	scale      float32

	block [][]int32 // current frame, per channel
	pos   int       // next unread position within block
	done  bool
}

func (s *source) SampleRate() int                { return s.sampleRate }
func (s *source) Channels() int                  { return s.channels }
func (s *source) Frames() int64                  { return s.frames }
func (s *source) ChannelMap() []audio.ChannelTag { return layouts[s.channels] }

// Close is a no-op: flac.Stream.Close would close the reader it was given,
// which belongs to the caller.
func (s *source) Close() error { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	want := len(dst) / s.channels
	written := 0
	for written < want {
		if s.block == nil || s.pos >= len(s.block[0]) {
			if s.done {
				break
			}
			block, err := s.dec.Next()
			if err == io.EOF {
				s.done = true
				break
			}
			if err != nil {
				return written * s.channels, fmt.Errorf("decoding flac frame: %w", err)
			}
			if len(block) != s.channels {
				return written * s.channels, fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(block), s.channels)
			}
			s.block, s.pos = block, 0
			continue
		}

		n := min(want-written, len(s.block[0])-s.pos)
		for i := range n {
			base := (written + i) * s.channels
			for ch := range s.channels {
				dst[base+ch] = float32(s.block[ch][s.pos+i]) / s.scale
			}
		}
		s.pos += n
		written += n
	}

	if written == 0 {
		return 0, io.EOF
	}
	if written < want {
		return written * s.channels, io.EOF
	}
	return written * s.channels, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return newSource(streamReader{stream: stream}, int(info.SampleRate), int(info.NChannels),
		int(info.BitsPerSample), info.NSamples), nil
}

func newSource(dec frameReader, sampleRate, channels, bitDepth int, total uint64) *source {
	frames := int64(total)
	if total == 0 {
		frames = -1
	}
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		scale:      float32(int64(1) << (bitDepth - 1)),
	}
}
