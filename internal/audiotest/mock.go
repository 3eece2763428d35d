// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/r128scan/audio"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	declared   int64
	channelMap []audio.ChannelTag
	readErr    error
	failAfter  int // frames delivered before readErr is returned
	closeErr   error
	closed     bool
	trailing   int // samples of an incomplete frame appended to the last read
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
		declared:     int64(totalSamples),
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a full scale sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewToneSource(sampleRate, channels, totalSamples, frequency, 1.0)
}

// NewToneSource creates a mock source that generates a sine wave of the given
// amplitude on every channel.
func NewToneSource(sampleRate, channels, totalSamples int, frequency, amplitude float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewSliceSource plays back interleaved samples verbatim.
func NewSliceSource(sampleRate, channels int, samples []float32) *MockSource {
	frames := len(samples) / channels
	return NewMockSource(sampleRate, channels, frames, func(sample int, channel int) float32 {
		return samples[sample*channels+channel]
	})
}

// WithChannelMap sets the layout reported by ChannelMap.
func (m *MockSource) WithChannelMap(tags ...audio.ChannelTag) *MockSource {
	m.channelMap = tags
	return m
}

// WithDeclaredFrames overrides the frame count reported by Frames.
func (m *MockSource) WithDeclaredFrames(frames int64) *MockSource {
	m.declared = frames
	return m
}

// WithReadError makes ReadSamples fail with err once frames have been delivered.
func (m *MockSource) WithReadError(frames int, err error) *MockSource {
	m.failAfter = frames
	m.readErr = err
	return m
}

// WithTrailingSamples makes the final read return n extra samples that do
// not form a whole frame. n must be less than the channel count.
func (m *MockSource) WithTrailingSamples(n int) *MockSource {
	m.trailing = n
	return m
}

// WithCloseError makes Close return err.
func (m *MockSource) WithCloseError(err error) *MockSource {
	m.closeErr = err
	return m
}

func (m *MockSource) SampleRate() int                { return m.sampleRate }
func (m *MockSource) Channels() int                  { return m.channels }
func (m *MockSource) Frames() int64                  { return m.declared }
func (m *MockSource) ChannelMap() []audio.ChannelTag { return m.channelMap }

func (m *MockSource) Close() error {
	m.closed = true
	return m.closeErr
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.readErr != nil && m.generated >= m.failAfter {
		return 0, m.readErr
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	if m.readErr != nil {
		framesAvailable = min(framesAvailable, m.failAfter-m.generated)
	}
	framesToWrite := min(framesRequested, framesAvailable)

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		if m.trailing > 0 && samplesWritten+m.trailing <= len(dst) {
			for ch := range m.trailing {
				dst[samplesWritten+ch] = m.waveform(m.totalSamples, ch)
			}
			samplesWritten += m.trailing
		}
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
