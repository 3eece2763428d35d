// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/ik5/r128scan/audio"
)

const (
	formatPCM        = 0x0001
	formatFloat      = 0x0003
	formatExtensible = 0xFFFE
)

// maskOrder lists the WAVE_FORMAT_EXTENSIBLE speaker bits from bit 0 upward.
var maskOrder = [...]audio.ChannelTag{
	audio.ChannelFrontLeft,
	audio.ChannelFrontRight,
	audio.ChannelFrontCenter,
	audio.ChannelLFE,
	audio.ChannelRearLeft,
	audio.ChannelRearRight,
	audio.ChannelFrontLeftOfCenter,
	audio.ChannelFrontRightOfCenter,
	audio.ChannelRearCenter,
	audio.ChannelSideLeft,
	audio.ChannelSideRight,
	audio.ChannelTopCenter,
	audio.ChannelTopFrontLeft,
	audio.ChannelTopFrontCenter,
	audio.ChannelTopFrontRight,
	audio.ChannelTopRearLeft,
	audio.ChannelTopRearCenter,
	audio.ChannelTopRearRight,
}

// header holds what the analyzer needs from the RIFF chunks ahead of the PCM data.
type header struct {
	format      uint16 // sub-format for WAVE_FORMAT_EXTENSIBLE
	channels    int
	blockAlign  int
	channelMask uint32
	dataSize    int64 // -1 when the writer left the size open
}

// frames returns the declared frame count, or -1 if unknown.
func (h header) frames() int64 {
	if h.dataSize < 0 || h.blockAlign <= 0 {
		return -1
	}
	return h.dataSize / int64(h.blockAlign)
}

// channelMap expands the speaker mask into one tag per channel. Channels the
// mask does not cover are tagged invalid. A zero mask means no layout.
func (h header) channelMap() []audio.ChannelTag {
	if h.channelMask == 0 || h.channels <= 0 {
		return nil
	}

	tags := make([]audio.ChannelTag, h.channels)
	mask := h.channelMask
	for i := range tags {
		if mask == 0 {
			tags[i] = audio.ChannelInvalid
			continue
		}
		bit := bits.TrailingZeros32(mask)
		mask &^= 1 << bit
		if bit < len(maskOrder) {
			tags[i] = maskOrder[bit]
		} else {
			tags[i] = audio.ChannelInvalid
		}
	}
	return tags
}

// scanHeader walks the RIFF chunks up to "data".
func scanHeader(r io.Reader) (header, error) {
	h := header{dataSize: -1}

	riff := make([]byte, 12)
	if _, err := io.ReadFull(r, riff); err != nil {
		return h, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if !bytes.Equal(riff[:4], []byte("RIFF")) || !bytes.Equal(riff[8:12], []byte("WAVE")) {
		return h, ErrNotWavFile
	}

	seenFmt := false
	chunk := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, chunk); err != nil {
			return h, fmt.Errorf("%w: missing data chunk", ErrUnsupportedWavLayout)
		}
		id := string(chunk[:4])
		size := int64(binary.LittleEndian.Uint32(chunk[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return h, fmt.Errorf("%w: fmt chunk of %d bytes", ErrUnsupportedWavLayout, size)
			}
			body := make([]byte, size+size%2)
			if _, err := io.ReadFull(r, body); err != nil {
				return h, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}
			h.format = binary.LittleEndian.Uint16(body[0:2])
			h.channels = int(binary.LittleEndian.Uint16(body[2:4]))
			h.blockAlign = int(binary.LittleEndian.Uint16(body[12:14]))
			if h.format == formatExtensible && size >= 40 {
				h.channelMask = binary.LittleEndian.Uint32(body[20:24])
				h.format = binary.LittleEndian.Uint16(body[24:26])
			}
			seenFmt = true

		case "data":
			if !seenFmt {
				return h, fmt.Errorf("%w: data before fmt", ErrUnsupportedWavLayout)
			}
			if size != 0xFFFFFFFF {
				h.dataSize = size
			}
			return h, nil

		default:
			// Chunks are word aligned
			if _, err := io.CopyN(io.Discard, r, size+size%2); err != nil {
				return h, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}
		}
	}
}
