// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"github.com/ik5/r128scan/audio"
	"github.com/ik5/r128scan/ebur128"
)

// fiveChannelFallback is applied to 5 channel material that carries no
// layout of its own.
var fiveChannelFallback = []ebur128.Channel{
	ebur128.Left,
	ebur128.Right,
	ebur128.Center,
	ebur128.LeftSurround,
	ebur128.RightSurround,
}

// ResolveChannelMap turns the decoder's channel layout into loudness roles.
// tags is used when it names every channel. Without it, 5 channel tracks get
// L, R, C, Ls, Rs. Any other case returns nil and the state keeps its default
// layout.
func ResolveChannelMap(channels int, tags []audio.ChannelTag) []ebur128.Channel {
	if channels > 0 && len(tags) == channels {
		roles := make([]ebur128.Channel, channels)
		for i, tag := range tags {
			roles[i] = roleOf(tag)
		}
		return roles
	}

	if channels == len(fiveChannelFallback) {
		roles := make([]ebur128.Channel, channels)
		copy(roles, fiveChannelFallback)
		return roles
	}

	return nil
}

func roleOf(tag audio.ChannelTag) ebur128.Channel {
	switch tag {
	case audio.ChannelMono, audio.ChannelFrontCenter:
		return ebur128.Center
	case audio.ChannelFrontLeft:
		return ebur128.Left
	case audio.ChannelFrontRight:
		return ebur128.Right
	case audio.ChannelRearLeft:
		return ebur128.LeftSurround
	case audio.ChannelRearRight:
		return ebur128.RightSurround
	default:
		return ebur128.Unused
	}
}
