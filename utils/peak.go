// SPDX-License-Identifier: EPL-2.0

package utils

// InterpolatedPeak returns the largest magnitude of the curve through four
// consecutive samples, evaluated at factor-1 evenly spaced points strictly
// between y1 and y2. factor below 2 yields 0.
func InterpolatedPeak(y0, y1, y2, y3 float32, factor int) float32 {
	var peak float32
	for i := 1; i < factor; i++ {
		v := CubicInterpolate(y0, y1, y2, y3, float32(i)/float32(factor))
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	return peak
}
