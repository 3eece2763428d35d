// SPDX-License-Identifier: EPL-2.0

package ebur128_test

import (
	"fmt"
	"math"

	"github.com/ik5/r128scan/ebur128"
)

// Example measures a -23 dBFS stereo reference tone.
func Example() {
	const rate = 48000

	st, err := ebur128.New(2, rate, ebur128.ModeI)
	if err != nil {
		fmt.Println(err)
		return
	}

	amplitude := math.Pow(10, -23.0/20)
	buf := make([]float32, rate*2)
	for second := 0; second < 5; second++ {
		for i := range rate {
			n := second*rate + i
			v := float32(amplitude * math.Sin(2*math.Pi*1000*float64(n)/rate))
			buf[2*i], buf[2*i+1] = v, v
		}
		if err := st.AddFramesFloat(buf, rate); err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Printf("%.1f LUFS\n", st.LoudnessGlobal())
	// Output: -23.0 LUFS
}
