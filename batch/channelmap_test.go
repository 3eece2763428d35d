// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ik5/r128scan/audio"
	"github.com/ik5/r128scan/ebur128"
)

func TestResolveChannelMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		tags     []audio.ChannelTag
		want     []ebur128.Channel
	}{
		{
			name:     "five channels without map",
			channels: 5,
			want: []ebur128.Channel{
				ebur128.Left, ebur128.Right, ebur128.Center,
				ebur128.LeftSurround, ebur128.RightSurround,
			},
		},
		{
			name:     "stereo without map",
			channels: 2,
			want:     nil,
		},
		{
			name:     "six channels without map",
			channels: 6,
			want:     nil,
		},
		{
			name:     "mono tag is center",
			channels: 1,
			tags:     []audio.ChannelTag{audio.ChannelMono},
			want:     []ebur128.Channel{ebur128.Center},
		},
		{
			name:     "5.1 with lfe",
			channels: 6,
			tags: []audio.ChannelTag{
				audio.ChannelFrontLeft, audio.ChannelFrontRight, audio.ChannelFrontCenter,
				audio.ChannelLFE, audio.ChannelRearLeft, audio.ChannelRearRight,
			},
			want: []ebur128.Channel{
				ebur128.Left, ebur128.Right, ebur128.Center,
				ebur128.Unused, ebur128.LeftSurround, ebur128.RightSurround,
			},
		},
		{
			name:     "unknown and side tags are unused",
			channels: 4,
			tags: []audio.ChannelTag{
				audio.ChannelInvalid, audio.ChannelSideLeft, audio.ChannelTopCenter, audio.ChannelTag(99),
			},
			want: []ebur128.Channel{ebur128.Unused, ebur128.Unused, ebur128.Unused, ebur128.Unused},
		},
		{
			name:     "five channel map wins over fallback",
			channels: 5,
			tags: []audio.ChannelTag{
				audio.ChannelFrontLeft, audio.ChannelFrontCenter, audio.ChannelFrontRight,
				audio.ChannelRearLeft, audio.ChannelRearRight,
			},
			want: []ebur128.Channel{
				ebur128.Left, ebur128.Center, ebur128.Right,
				ebur128.LeftSurround, ebur128.RightSurround,
			},
		},
		{
			name:     "short map is ignored",
			channels: 5,
			tags:     []audio.ChannelTag{audio.ChannelFrontLeft, audio.ChannelFrontRight},
			want: []ebur128.Channel{
				ebur128.Left, ebur128.Right, ebur128.Center,
				ebur128.LeftSurround, ebur128.RightSurround,
			},
		},
		{
			name:     "no channels",
			channels: 0,
			tags:     []audio.ChannelTag{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveChannelMap(tt.channels, tt.tags))
		})
	}
}

func TestResolveChannelMap_FallbackNotShared(t *testing.T) {
	t.Parallel()

	first := ResolveChannelMap(5, nil)
	first[0] = ebur128.Unused

	assert.Equal(t, ebur128.Left, ResolveChannelMap(5, nil)[0])
}
