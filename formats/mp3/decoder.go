// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/r128scan/audio"
)

// go-mp3 always yields 16-bit little-endian stereo
const (
	channels      = 2
	bytesPerFrame = 4
)

var stereoLayout = []audio.ChannelTag{audio.ChannelFrontLeft, audio.ChannelFrontRight}

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	pending    []byte // bytes of an incomplete sample held over from the last read
}

func (s *source) SampleRate() int                { return s.sampleRate }
func (s *source) Channels() int                  { return channels }
func (s *source) ChannelMap() []audio.ChannelTag { return stereoLayout }
func (s *source) Close() error                   { return nil }

// Frames derives the frame count from the decoded length, which go-mp3 can
// only report for seekable input.
func (s *source) Frames() int64 {
	length := s.dec.Length()
	if length < 0 {
		return -1
	}
	return length / bytesPerFrame
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Each sample is 2 bytes (int16 little-endian)
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	held := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	var err error
	n := held
	for n < bytesPerFrame && err == nil {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
		if m == 0 && err == nil {
			break
		}
	}
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	// Only whole frames go out, the remainder waits for the next call
	whole := n - n%bytesPerFrame
	s.pending = append(s.pending, s.buf[whole:n]...)

	samples := whole / 2
	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		val := int16(low | (high << 8))
		dst[i] = float32(val) / 32768.0
	}

	if samples == 0 {
		return 0, io.EOF
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
