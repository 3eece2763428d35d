package audio

import "io"

// mockSource is a test helper that generates audio data for testing.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	value        float32
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
	}
}

func (m *mockSource) SampleRate() int          { return m.sampleRate }
func (m *mockSource) Channels() int            { return m.channels }
func (m *mockSource) Frames() int64            { return int64(m.totalSamples) }
func (m *mockSource) ChannelMap() []ChannelTag { return nil }
func (m *mockSource) Close() error             { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for i := range framesToWrite * m.channels {
		dst[i] = m.value
	}

	m.generated += framesToWrite
	return framesToWrite * m.channels, nil
}
