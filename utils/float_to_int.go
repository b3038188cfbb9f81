// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// pcm16Scale maps [-1,1) onto the int16 range.
const pcm16Scale = 32768.0

// Float32ToInt16 converts a normalized sample to 16-bit PCM as
// round(x * 32768), clipped to [math.MinInt16, math.MaxInt16].
// Any float produced by Int16ToFloat32 converts back to the same int16.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * pcm16Scale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	if math.IsNaN(v) {
		return 0
	}
	return int16(v)
}

// Int16ToFloat32 converts 16-bit PCM to a normalized sample, s / 32768.
func Int16ToFloat32(s int16) float32 {
	return float32(s) / pcm16Scale
}
