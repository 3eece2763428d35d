// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/ik5/r128scan/audio"
)

func TestScanHeader_Canonical(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavSpec{format: formatPCM, channels: 2, sampleRate: 44100, bits: 16, data: pcm16(1, 2, 3, 4)})

	h, err := scanHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("scanHeader() error = %v", err)
	}
	if h.format != formatPCM || h.channels != 2 || h.blockAlign != 4 {
		t.Errorf("scanHeader() = %+v", h)
	}
	if h.frames() != 2 {
		t.Errorf("frames() = %d, want 2", h.frames())
	}
	if h.channelMap() != nil {
		t.Errorf("channelMap() = %v, want nil", h.channelMap())
	}
}

func TestScanHeader_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	// Odd-sized chunk exercises the pad byte
	data := buildWAV(wavSpec{format: formatPCM, channels: 1, sampleRate: 8000, bits: 16, extra: []byte{1, 2, 3}, data: pcm16(7)})

	h, err := scanHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("scanHeader() error = %v", err)
	}
	if h.frames() != 1 {
		t.Errorf("frames() = %d, want 1", h.frames())
	}
}

func TestScanHeader_ExtensibleMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		mask     uint32
		want     []audio.ChannelTag
	}{
		{
			name: "5.1", channels: 6, mask: 0x3F,
			want: []audio.ChannelTag{
				audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
				audio.ChannelLFE, audio.ChannelRearLeft, audio.ChannelRearRight,
			},
		},
		{
			name: "5.1 side", channels: 6, mask: 0x60F,
			want: []audio.ChannelTag{
				audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
				audio.ChannelLFE, audio.ChannelSideLeft, audio.ChannelSideRight,
			},
		},
		{
			name: "mono center", channels: 1, mask: 0x4,
			want: []audio.ChannelTag{audio.ChannelFrontCenter},
		},
		{
			name: "mask shorter than channels", channels: 3, mask: 0x3,
			want: []audio.ChannelTag{audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelInvalid},
		},
		{
			name: "reserved bit", channels: 1, mask: 0x80000000,
			want: []audio.ChannelTag{audio.ChannelInvalid},
		},
		{name: "no mask", channels: 2, mask: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := buildWAV(wavSpec{
				format: formatExtensible, subFormat: formatPCM, mask: tt.mask,
				channels: tt.channels, sampleRate: 48000, bits: 16,
				data: make([]byte, tt.channels*2),
			})

			h, err := scanHeader(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("scanHeader() error = %v", err)
			}
			if h.format != formatPCM {
				t.Errorf("format = 0x%04x, want sub-format PCM", h.format)
			}
			if got := h.channelMap(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("channelMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanHeader_Errors(t *testing.T) {
	t.Parallel()

	noData := buildWAV(wavSpec{format: formatPCM, channels: 1, sampleRate: 8000, bits: 16})
	noData = noData[:len(noData)-8] // strip the data chunk header

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"short", []byte("RIFF"), ErrNotWavFile},
		{"not riff", []byte("FORM\x00\x00\x00\x00AIFF"), ErrNotWavFile},
		{"missing data", noData, ErrUnsupportedWavLayout},
		{"data before fmt", []byte("RIFF\x0c\x00\x00\x00WAVEdata\x00\x00\x00\x00"), ErrUnsupportedWavLayout},
		{"tiny fmt", []byte("RIFF\x10\x00\x00\x00WAVEfmt \x04\x00\x00\x00\x01\x00\x01\x00"), ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := scanHeader(bytes.NewReader(tt.in)); !errors.Is(err, tt.want) {
				t.Errorf("scanHeader() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHeader_UnknownDataSize(t *testing.T) {
	t.Parallel()

	h := header{blockAlign: 4, dataSize: -1}
	if h.frames() != -1 {
		t.Errorf("frames() = %d, want -1", h.frames())
	}
}
