// SPDX-License-Identifier: EPL-2.0

package soundtest

import (
	"math"

	"github.com/toneforge/toneforge/synth"
)

// Sine generates n mono samples of a unity-gain sine at the given
// frequency and rate.
func Sine(frequency float64, sampleRate, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate))
	}
	return samples
}

// Constant generates n samples with the same value.
func Constant(value float64, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = value
	}
	return samples
}

// NewSound wraps samples in a descriptor with a written clip, failing the
// fixture loudly on error since tests construct only valid inputs.
func NewSound(samples []float64, sampleRate int) *synth.Sound {
	s, err := synth.NewBufferedSound(samples, sampleRate)
	if err != nil {
		panic(err)
	}
	return s
}

// ApproxEqual reports whether two samples are within eps of each other.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
