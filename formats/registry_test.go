// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/r128scan/audio"
	"github.com/ik5/r128scan/formats/wav"
)

func writeWAV(t *testing.T, name string, samples []int16) string {
	t.Helper()

	var buf bytes.Buffer
	if err := wav.WriteMultiWAV16(&buf, 8000, 2, samples); err != nil {
		t.Fatalf("WriteMultiWAV16() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestNewRegistry_Formats(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "flac", "mp3", "oga", "ogg", "wav", "wave"}
	if got := NewRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, "tone.WAV", []int16{16384, -16384, 0, 0, 8192, 8192})

	src, err := NewOpener().Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if src.SampleRate() != 8000 || src.Channels() != 2 || src.Frames() != 3 {
		t.Errorf("metadata = (%d Hz, %d ch, %d frames), want (8000, 2, 3)",
			src.SampleRate(), src.Channels(), src.Frames())
	}

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 || dst[0] != 0.5 || dst[1] != -0.5 || dst[4] != 0.25 {
		t.Errorf("ReadSamples() = %d %v", n, dst[:n])
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := src.Close(); err == nil {
		t.Error("second Close() error = nil, want already closed")
	}
}

func TestOpener_Open_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file at all"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"unknown extension", filepath.Join(dir, "notes.txt"), audio.ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "README"), audio.ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.wav"), os.ErrNotExist},
		{"corrupt file", garbage, wav.ErrNotWavFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewOpener().Open(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Open() error = %v, want %v", err, tt.want)
			}
		})
	}
}
