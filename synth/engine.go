// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"github.com/toneforge/toneforge/clip"
	"github.com/toneforge/toneforge/key"
)

// Headroom is the attenuation applied to every synthesized sample so that
// later additive mixing has room before clipping.
const Headroom = 0.25

// Engine synthesizes sample buffers and their clip assets from sound
// descriptors. The key table is injected at construction; the engine holds
// no other state and no ownership of the sounds it produces.
type Engine struct {
	keys key.Table
}

// NewEngine creates an engine resolving piano keys through the given table.
// A nil table is valid for engines that only use CreateTone.
func NewEngine(keys key.Table) *Engine {
	return &Engine{keys: keys}
}

// CreateTone synthesizes a full sine buffer from the descriptor and returns
// a new descriptor with SampleLength, Samples and Clip populated. The
// source descriptor is not modified.
//
// Fails with ErrInvalidDuration when DurationSecs <= 0 and with
// ErrUnsupportedWave for any wave type other than WaveSine.
func (e *Engine) CreateTone(src Sound) (*Sound, error) {
	if src.DurationSecs <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, src.DurationSecs)
	}
	if src.Wave != WaveSine {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWave, src.Wave)
	}

	snd := src
	snd.SampleLength = snd.sampleLength()
	snd.Samples = make([]float64, snd.SampleLength)
	for i := range snd.Samples {
		snd.Samples[i] = SineValue(snd.Frequency, i, snd.SampleRate) * Headroom
	}

	if err := snd.newClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := snd.SyncClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &snd, nil
}

// FromKeys synthesizes one continuous buffer that plays each key in
// sequence. The descriptor's own frequency sets the canvas: a full tone is
// synthesized first, then partitioned into ceil(length/len(keys)) sized
// segments, each overwritten with its key's frequency at a local sample
// index starting from zero. The final segment is truncated at the canvas
// end when the division is uneven.
//
// All keys are resolved before any synthesis, so an unknown key fails the
// call without touching a clip.
func (e *Engine) FromKeys(src Sound, keys []key.Key) (*Sound, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	freqs := make([]float64, len(keys))
	for i, k := range keys {
		hz, err := e.keys.Frequency(k)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		freqs[i] = float64(hz)
	}

	snd, err := e.CreateTone(src)
	if err != nil {
		return nil, err
	}

	segment := (snd.SampleLength + len(keys) - 1) / len(keys)
	for ki, f := range freqs {
		start := ki * segment
		for j := 0; j < segment && start+j < snd.SampleLength; j++ {
			snd.Samples[start+j] = SineValue(f, j, snd.SampleRate) * Headroom
		}
	}

	if err := snd.SyncClip(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return snd, nil
}

// NewClip allocates a standalone mono, non-streaming clip asset at the
// given length and rate. Transforms use it to materialize combined sounds.
func (e *Engine) NewClip(length, sampleRate int) (*clip.Clip, error) {
	return clip.New(length, 1, sampleRate, false)
}
