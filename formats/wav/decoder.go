// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/r128scan/audio"
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	channelMap []audio.ChannelTag
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int                { return s.sampleRate }
func (s *wavSource) Channels() int                  { return s.channels }
func (s *wavSource) Frames() int64                  { return s.frames }
func (s *wavSource) ChannelMap() []audio.ChannelTag { return s.channelMap }

func (s *wavSource) Close() error { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	// Drop a trailing partial frame
	n -= n % s.channels

	switch s.bitDepth {
	case 8:
		// 8-bit WAV is unsigned
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]-128) / 128.0
		}
	default:
		scale := float32(int64(1) << (s.bitDepth - 1))
		for i := range n {
			dst[i] = float32(s.intBuf.Data[i]) / scale
		}
	}

	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := audio.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-audio does not expose the extensible channel mask or the data chunk
	// size, so walk the chunks once before handing the stream over.
	hdr, err := scanHeader(rs)
	if err != nil {
		return nil, err
	}
	switch hdr.format {
	case formatPCM:
	case formatFloat:
		return nil, ErrFloatNotSupported
	default:
		return nil, fmt.Errorf("%w: format tag 0x%04x", ErrUnsupportedWavLayout, hdr.format)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &wavSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		frames:     hdr.frames(),
		channelMap: hdr.channelMap(),
	}, nil
}
