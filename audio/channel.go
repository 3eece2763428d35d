// SPDX-License-Identifier: EPL-2.0

package audio

// ChannelTag names the speaker position a physical channel is meant for.
type ChannelTag int

const (
	ChannelInvalid ChannelTag = iota
	ChannelMono
	ChannelFrontLeft
	ChannelFrontRight
	ChannelFrontCenter
	ChannelLFE
	ChannelRearLeft
	ChannelRearRight
	ChannelRearCenter
	ChannelFrontLeftOfCenter
	ChannelFrontRightOfCenter
	ChannelSideLeft
	ChannelSideRight
	ChannelTopCenter
	ChannelTopFrontLeft
	ChannelTopFrontCenter
	ChannelTopFrontRight
	ChannelTopRearLeft
	ChannelTopRearCenter
	ChannelTopRearRight
)

var channelNames = [...]string{
	ChannelInvalid:            "invalid",
	ChannelMono:               "mono",
	ChannelFrontLeft:          "front-left",
	ChannelFrontRight:         "front-right",
	ChannelFrontCenter:        "front-center",
	ChannelLFE:                "lfe",
	ChannelRearLeft:           "rear-left",
	ChannelRearRight:          "rear-right",
	ChannelRearCenter:         "rear-center",
	ChannelFrontLeftOfCenter:  "front-left-of-center",
	ChannelFrontRightOfCenter: "front-right-of-center",
	ChannelSideLeft:           "side-left",
	ChannelSideRight:          "side-right",
	ChannelTopCenter:          "top-center",
	ChannelTopFrontLeft:       "top-front-left",
	ChannelTopFrontCenter:     "top-front-center",
	ChannelTopFrontRight:      "top-front-right",
	ChannelTopRearLeft:        "top-rear-left",
	ChannelTopRearCenter:      "top-rear-center",
	ChannelTopRearRight:       "top-rear-right",
}

func (c ChannelTag) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return "unknown"
	}
	return channelNames[c]
}
