// SPDX-License-Identifier: EPL-2.0

package player

import (
	"github.com/toneforge/toneforge/utils"
)

// Resample converts mono samples from srcRate to dstRate using cubic
// interpolation over four neighboring samples, with edge samples
// duplicated at the boundaries. Whole-buffer variant of the usual
// streaming approach; playback material is already fully in memory.
func Resample(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate || len(samples) == 0 {
		return samples
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(float64(len(samples)) / ratio)
	if outLen == 0 {
		outLen = 1
	}

	out := make([]float64, outLen)
	at := func(i int) float64 {
		if i < 0 {
			i = 0
		}
		if i >= len(samples) {
			i = len(samples) - 1
		}
		return samples[i]
	}

	pos := 0.0
	for i := range out {
		idx := int(pos)
		frac := pos - float64(idx)
		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
		pos += ratio
	}
	return out
}
