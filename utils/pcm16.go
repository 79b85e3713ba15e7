// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt16 converts a sample in [-1, 1] to 16-bit PCM, clamping values
// outside the range.
func FloatToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// NormalizeToPCM16 scales data so that its largest absolute value maps to
// full scale and converts it to 16-bit PCM. A silent input stays silent.
func NormalizeToPCM16(data []float64) []int16 {
	var peak float64
	for _, v := range data {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}

	out := make([]int16, len(data))
	if peak == 0 {
		return out
	}

	inv := 1 / peak
	for i, v := range data {
		out[i] = FloatToInt16(v * inv)
	}

	return out
}
