// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt16 converts a float64 sample in [-1, 1] to 16-bit PCM.
// Out-of-range input is clamped before scaling.
func FloatToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat converts a 16-bit PCM sample to float64 in [-1, 1).
func Int16ToFloat(v int16) float64 {
	return float64(v) / 32768.0
}

// FloatsToInt16 batch-converts samples, clamping each value.
func FloatsToInt16(src []float64) []int16 {
	dst := make([]int16, len(src))
	for i, x := range src {
		dst[i] = FloatToInt16(x)
	}
	return dst
}
