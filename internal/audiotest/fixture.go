// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/r128scan/formats/wav"
	"github.com/ik5/r128scan/utils"
)

// WriteWAV renders src as a 16-bit WAV file named name inside a temporary
// directory owned by t and returns its path.
func WriteWAV(t testing.TB, name string, src *MockSource) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := writeWAVFile(path, src); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func writeWAVFile(path string, src *MockSource) error {
	samples := make([]float32, src.totalSamples*src.channels)
	for frame := range src.totalSamples {
		for ch := range src.channels {
			samples[frame*src.channels+ch] = src.waveform(frame, ch)
		}
	}

	var buf bytes.Buffer
	pcm := utils.Float32sToInt16s(nil, samples)
	if err := wav.WriteMultiWAV16(&buf, src.sampleRate, src.channels, pcm); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}
