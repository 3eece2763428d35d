// SPDX-License-Identifier: EPL-2.0

package audio

import "testing"

func TestChannelTag_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  ChannelTag
		want string
	}{
		{ChannelInvalid, "invalid"},
		{ChannelMono, "mono"},
		{ChannelFrontLeft, "front-left"},
		{ChannelRearRight, "rear-right"},
		{ChannelTopRearRight, "top-rear-right"},
		{ChannelTag(-1), "unknown"},
		{ChannelTag(1000), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("ChannelTag(%d).String() = %q, want %q", int(tt.tag), got, tt.want)
		}
	}
}
