// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"

	"github.com/toneforge/toneforge/clip"
)

// ScaleVolume multiplies every sample except the last by amplitude, in
// place, and returns the slice. Values are not clamped; an amplitude above
// 1 intentionally produces out-of-range samples for the caller or playback
// host to tolerate or clip.
//
// The final sample is excluded on purpose, preserving the historical
// boundary behavior callers depend on.
func ScaleVolume(samples []float64, amplitude float64) []float64 {
	for i := 0; i < len(samples)-1; i++ {
		samples[i] *= amplitude
	}
	return samples
}

// ScaleClipVolume reads the clip's raw samples and scales them with
// ScaleVolume. The clip itself is not rewritten; callers decide what to do
// with the scaled data.
func ScaleClipVolume(c *clip.Clip, amplitude float64) ([]float64, error) {
	if c == nil {
		return nil, ErrNoClip
	}

	samples := make([]float64, c.Len()*c.Channels())
	if err := c.GetData(samples, 0); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ScaleVolume(samples, amplitude), nil
}

// Mix combines already-synthesized sounds by position-wise additive
// summation and returns a new descriptor with its own clip. The combined
// buffer is sized to the longest input; shorter inputs contribute zero
// past their end, so no input data is lost.
//
// The result's frequency is the sum of all input frequencies, its sample
// rate is the first input's, and its duration is the longest input's.
// Mixing never re-runs the wave generator; it only sums existing samples.
func Mix(sounds ...*Sound) (*Sound, error) {
	if len(sounds) == 0 {
		return nil, ErrNoSounds
	}

	longest := 0
	frequency := 0.0
	duration := 0.0
	for _, s := range sounds {
		if len(s.Samples) == 0 {
			return nil, ErrNoSamples
		}
		if len(s.Samples) > longest {
			longest = len(s.Samples)
		}
		frequency += s.Frequency
		duration = math.Max(duration, s.DurationSecs)
	}

	combined := &Sound{
		Frequency:    frequency,
		Wave:         sounds[0].Wave,
		SampleRate:   sounds[0].SampleRate,
		DurationSecs: duration,
		SampleLength: longest,
		Samples:      make([]float64, longest),
	}

	for _, s := range sounds {
		for i, v := range s.Samples {
			combined.Samples[i] += v
		}
	}

	if err := combined.newClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := combined.SyncClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return combined, nil
}

// StretchPitch lengthens the sound by repeating each sample repeatFactor
// times, approximating a pitch/tempo drop without spectral resampling.
// The operation is destructive: the descriptor's Samples are replaced and
// its clip re-created at the new length (clips are fixed-capacity and
// never resized). The mutated descriptor is returned for call chaining.
//
// repeatFactor must be >= 1 or the call fails with ErrInvalidParameter.
// Shortening is out of scope.
func StretchPitch(s *Sound, repeatFactor int) (*Sound, error) {
	if repeatFactor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParameter, repeatFactor)
	}

	stretched := make([]float64, len(s.Samples)*repeatFactor)
	for i := range stretched {
		stretched[i] = s.Samples[i/repeatFactor]
	}

	s.Samples = stretched
	s.SampleLength = len(stretched)
	s.DurationSecs *= float64(repeatFactor)

	if err := s.newClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.SyncClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return s, nil
}

// Splice inserts every sample of toInsert into original at insertPosition
// and returns the combined descriptor with a fresh clip. The inserted run
// lands contiguously starting at insertPosition with original's tail
// shifted right behind it.
//
// The combined length follows the descriptors' stated durations:
// ceil(origDur·origRate + insDur·insRate). For freshly synthesized inputs
// this equals the summed sample counts; descriptors with stale durations
// inherit the mismatch.
//
// insertPosition must lie within [0, len(original.Samples)] or the call
// fails with ErrIndexOutOfRange.
func Splice(original, toInsert *Sound, insertPosition int) (*Sound, error) {
	if insertPosition < 0 || insertPosition > len(original.Samples) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, insertPosition)
	}

	length := int(math.Ceil(
		original.DurationSecs*float64(original.SampleRate) +
			toInsert.DurationSecs*float64(toInsert.SampleRate)))

	combined := &Sound{
		Frequency:    original.Frequency + toInsert.Frequency,
		Wave:         original.Wave,
		SampleRate:   original.SampleRate,
		DurationSecs: original.DurationSecs + toInsert.DurationSecs,
		SampleLength: length,
		Samples:      make([]float64, 0, len(original.Samples)+len(toInsert.Samples)),
	}

	combined.Samples = append(combined.Samples, original.Samples[:insertPosition]...)
	combined.Samples = append(combined.Samples, toInsert.Samples...)
	combined.Samples = append(combined.Samples, original.Samples[insertPosition:]...)

	if err := combined.newClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := combined.SyncClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return combined, nil
}
