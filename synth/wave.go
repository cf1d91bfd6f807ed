// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// WaveType selects the synthesis behavior of a sound.
// Only WaveSine is implemented; the remaining shapes are recognized by the
// descriptor but synthesis with them fails with ErrUnsupportedWave.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
	WaveDynamic
)

func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveNoise:
		return "noise"
	case WaveDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// SineValue returns the instantaneous amplitude of a sine wave at the given
// sample index: sin(2π · frequency · sampleIndex / sampleRate).
// Pure and total for all real inputs; sampleRate must be non-zero or the
// result is NaN.
func SineValue(frequency float64, sampleIndex, sampleRate int) float64 {
	return math.Sin(2 * math.Pi * frequency * float64(sampleIndex) / float64(sampleRate))
}
