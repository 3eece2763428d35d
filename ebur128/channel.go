// SPDX-License-Identifier: EPL-2.0

package ebur128

// Channel is the loudness role of one input channel. It decides the weight
// the channel's energy carries in the sum.
type Channel int

const (
	Unused Channel = iota
	Left
	Right
	Center
	LeftSurround
	RightSurround
	// DualMono counts a single channel as both left and right.
	DualMono
)

func (c Channel) weight() float64 {
	switch c {
	case Left, Right, Center:
		return 1.0
	case LeftSurround, RightSurround:
		return 1.41
	case DualMono:
		return 2.0
	default:
		return 0
	}
}

func (c Channel) String() string {
	switch c {
	case Unused:
		return "unused"
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	case LeftSurround:
		return "left-surround"
	case RightSurround:
		return "right-surround"
	case DualMono:
		return "dual-mono"
	default:
		return "unknown"
	}
}

// defaultLayout is applied by New: L, R, C, unused (LFE), Ls, Rs and
// unused for everything past the sixth channel.
func defaultLayout(channels int) []Channel {
	order := [...]Channel{Left, Right, Center, Unused, LeftSurround, RightSurround}
	layout := make([]Channel, channels)
	for i := range layout {
		if i < len(order) {
			layout[i] = order[i]
		}
	}
	return layout
}
