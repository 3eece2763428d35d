package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/r128scan/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

// Channel order fixed by the Vorbis I specification, section 4.3.9
var layouts = map[int][]audio.ChannelTag{
	1: {audio.ChannelMono},
	2: {audio.ChannelFrontLeft, audio.ChannelFrontRight},
	3: {audio.ChannelFrontLeft, audio.ChannelFrontCenter, audio.ChannelFrontRight},
	4: {audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelRearLeft, audio.ChannelRearRight},
	5: {
		audio.ChannelFrontLeft, audio.ChannelFrontCenter, audio.ChannelFrontRight,
		audio.ChannelRearLeft, audio.ChannelRearRight,
	},
	6: {
		audio.ChannelFrontLeft, audio.ChannelFrontCenter, audio.ChannelFrontRight,
		audio.ChannelRearLeft, audio.ChannelRearRight, audio.ChannelLFE,
	},
	7: {
		audio.ChannelFrontLeft, audio.ChannelFrontCenter, audio.ChannelFrontRight,
		audio.ChannelSideLeft, audio.ChannelSideRight, audio.ChannelRearCenter, audio.ChannelLFE,
	},
	8: {
		audio.ChannelFrontLeft, audio.ChannelFrontCenter, audio.ChannelFrontRight,
		audio.ChannelSideLeft, audio.ChannelSideRight,
		audio.ChannelRearLeft, audio.ChannelRearRight, audio.ChannelLFE,
	},
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int                { return s.sampleRate }
func (s *source) Channels() int                  { return s.channels }
func (s *source) ChannelMap() []audio.ChannelTag { return layouts[s.channels] }
func (s *source) Close() error                   { return nil }

func (s *source) Frames() int64 {
	if n := s.dec.Length(); n > 0 {
		return n
	}
	return -1
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	// oggvorbis counts interleaved values, not frames, and always stops on
	// a frame boundary when given a whole number of frames
	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
