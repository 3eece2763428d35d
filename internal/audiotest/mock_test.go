// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/ik5/r128scan/audio"
)

func TestMockSource_ReadsToEOF(t *testing.T) {
	t.Parallel()

	src := NewConstantSource(8000, 2, 5, 0.5)
	dst := make([]float32, 6)

	n, err := src.ReadSamples(dst)
	if n != 6 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (6, nil)", n, err)
	}
	n, err = src.ReadSamples(dst)
	if n != 4 || err != io.EOF {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, io.EOF)", n, err)
	}
	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Fatalf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}

	src.Reset()
	if n, _ := src.ReadSamples(dst); n != 6 {
		t.Errorf("ReadSamples() after Reset = %d, want 6", n)
	}
}

func TestMockSource_ReadError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	src := NewSilentSource(8000, 1, 100).WithReadError(10, errBoom)

	dst := make([]float32, 64)
	if n, err := src.ReadSamples(dst); n != 10 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (10, nil)", n, err)
	}
	if _, err := src.ReadSamples(dst); !errors.Is(err, errBoom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, errBoom)
	}
}

func TestMockSource_TrailingSamples(t *testing.T) {
	t.Parallel()

	src := NewConstantSource(8000, 2, 3, 0.5).WithTrailingSamples(1)
	dst := make([]float32, 16)

	n, err := src.ReadSamples(dst)
	if n != 7 || err != io.EOF {
		t.Fatalf("ReadSamples() = (%d, %v), want (7, io.EOF)", n, err)
	}
	if dst[6] != 0.5 {
		t.Errorf("trailing sample = %v, want 0.5", dst[6])
	}
}

func TestMockSource_Metadata(t *testing.T) {
	t.Parallel()

	src := NewSliceSource(16000, 2, []float32{1, 2, 3, 4}).
		WithChannelMap(audio.ChannelFrontLeft, audio.ChannelFrontRight).
		WithDeclaredFrames(7).
		WithCloseError(os.ErrClosed)

	if src.Frames() != 7 {
		t.Errorf("Frames() = %d, want 7", src.Frames())
	}
	if len(src.ChannelMap()) != 2 {
		t.Errorf("ChannelMap() = %v", src.ChannelMap())
	}
	if src.Closed() {
		t.Error("Closed() before Close")
	}
	if err := src.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestWriteWAV(t *testing.T) {
	t.Parallel()

	path := WriteWAV(t, "fixture.wav", NewSliceSource(8000, 2, []float32{0.5, -0.5, 0, 1}))

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 44+8 {
		t.Errorf("fixture size = %d, want 52", info.Size())
	}
}
