// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/toneforge/toneforge/clip"
)

// Sound is the central descriptor of one audio buffer: the parameters it
// was (or will be) synthesized from, the sample data, and the clip asset
// mirroring that data for playback.
//
// SampleLength is derived from SampleRate and DurationSecs on every
// synthesis call; it is only guaranteed to match len(Samples) immediately
// after a successful synthesis or transform. The clip is fixed-capacity:
// whenever SampleLength changes, the engine creates a new clip rather than
// resizing the old one.
type Sound struct {
	Frequency    float64
	Wave         WaveType
	SampleRate   int
	DurationSecs float64
	SampleLength int
	Samples      []float64
	Clip         *clip.Clip
}

// NewBufferedSound wraps already-materialized mono samples in a descriptor
// with a freshly written clip. Decoders and import paths use it to bring
// external audio into transform range. Frequency stays zero; arbitrary
// audio has no single known fundamental.
func NewBufferedSound(samples []float64, sampleRate int) (*Sound, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	s := &Sound{
		SampleRate:   sampleRate,
		DurationSecs: float64(len(samples)) / float64(sampleRate),
		SampleLength: len(samples),
		Samples:      samples,
	}
	if err := s.newClip(); err != nil {
		return nil, err
	}
	if err := s.SyncClip(); err != nil {
		return nil, err
	}
	return s, nil
}

// sampleLength derives the sample count from rate and duration.
// Ceiling rounding, applied uniformly; it keeps trailing fractional
// samples instead of dropping them.
func (s *Sound) sampleLength() int {
	return int(math.Ceil(float64(s.SampleRate) * s.DurationSecs))
}

// SyncClip rewrites the backing clip from the current Samples without
// reallocating it. It is the synchronization step every mutating transform
// performs before the clip is valid for playback. Fails with ErrNoClip
// when the sound has no clip yet.
//
// The write covers min(len(Samples), clip capacity) values: a sample slice
// that drifted from the clip length silently truncates or leaves stale
// tail data. Callers that changed the length must create a new clip
// instead.
func (s *Sound) SyncClip() error {
	if s.Clip == nil {
		return ErrNoClip
	}
	return s.Clip.SetData(s.Samples, 0)
}

// newClip allocates the sound's clip asset: mono, non-streaming, sized to
// the current SampleLength at the sound's rate.
func (s *Sound) newClip() error {
	c, err := clip.New(s.SampleLength, 1, s.SampleRate, false)
	if err != nil {
		return err
	}
	s.Clip = c
	return nil
}
