// SPDX-License-Identifier: EPL-2.0

package ebur128

import "math"

// kWeighting is the ITU-R BS.1770 pre-filter: a high shelf followed by a
// high pass, multiplied out into one 4th order section.
type kWeighting struct {
	b [5]float64
	a [5]float64
}

func newKWeighting(sampleRate int) kWeighting {
	rate := float64(sampleRate)

	// Stage 1: high shelf modelling the head
	f0 := 1681.974450955533
	g := 3.999843853973347
	q := 0.7071752369554196

	k := math.Tan(math.Pi * f0 / rate)
	vh := math.Pow(10.0, g/20.0)
	vb := math.Pow(vh, 0.4996667741545416)

	a0 := 1.0 + k/q + k*k
	pb := [3]float64{
		(vh + vb*k/q + k*k) / a0,
		2.0 * (k*k - vh) / a0,
		(vh - vb*k/q + k*k) / a0,
	}
	pa := [3]float64{
		1.0,
		2.0 * (k*k - 1.0) / a0,
		(1.0 - k/q + k*k) / a0,
	}

	// Stage 2: RLB high pass
	f0 = 38.13547087602444
	q = 0.5003270373238773
	k = math.Tan(math.Pi * f0 / rate)

	rb := [3]float64{1.0, -2.0, 1.0}
	ra := [3]float64{
		1.0,
		2.0 * (k*k - 1.0) / (1.0 + k/q + k*k),
		(1.0 - k/q + k*k) / (1.0 + k/q + k*k),
	}

	var f kWeighting
	f.b[0] = pb[0] * rb[0]
	f.b[1] = pb[0]*rb[1] + pb[1]*rb[0]
	f.b[2] = pb[0]*rb[2] + pb[1]*rb[1] + pb[2]*rb[0]
	f.b[3] = pb[1]*rb[2] + pb[2]*rb[1]
	f.b[4] = pb[2] * rb[2]

	f.a[0] = pa[0] * ra[0]
	f.a[1] = pa[0]*ra[1] + pa[1]*ra[0]
	f.a[2] = pa[0]*ra[2] + pa[1]*ra[1] + pa[2]*ra[0]
	f.a[3] = pa[1]*ra[2] + pa[2]*ra[1]
	f.a[4] = pa[2] * ra[2]
	return f
}

// filterState is the direct form II delay line of one channel.
type filterState [5]float64

func (v *filterState) process(f *kWeighting, x float64) float64 {
	v[0] = x - f.a[1]*v[1] - f.a[2]*v[2] - f.a[3]*v[3] - f.a[4]*v[4]
	y := f.b[0]*v[0] + f.b[1]*v[1] + f.b[2]*v[2] + f.b[3]*v[3] + f.b[4]*v[4]

	// Flush denormals, they stall the FPU on long silent tails
	if math.Abs(v[0]) < 0x1p-1022 {
		v[0] = 0
	}

	v[4], v[3], v[2], v[1] = v[3], v[2], v[1], v[0]
	return y
}
