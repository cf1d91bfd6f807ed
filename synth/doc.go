// SPDX-License-Identifier: EPL-2.0

// Package synth generates and transforms raw digital-audio sample buffers.
//
// The package holds the two halves of the core in one place, since they
// call into each other: the synthesis engine that builds sample buffers
// from sound descriptors, and the buffer transforms that rework
// already-synthesized data.
//
// # Sound Descriptors
//
// A Sound carries synthesis parameters, the sample slice, and the clip
// asset mirroring the samples for playback:
//
//	snd := synth.Sound{
//	    Frequency:    440,
//	    Wave:         synth.WaveSine,
//	    SampleRate:   8000,
//	    DurationSecs: 0.5,
//	}
//
// # Synthesis
//
// The Engine is constructed with an injected key table and produces new
// descriptors rather than mutating its input:
//
//	eng := synth.NewEngine(key.Default())
//	tone, err := eng.CreateTone(snd)
//	seq, err := eng.FromKeys(snd, []key.Key{key.C, key.E, key.G})
//
// Every synthesized sample is attenuated by Headroom (0.25) so that
// additive mixing has room before clipping. Sample counts derive from
// rate and duration with ceiling rounding.
//
// # Transforms
//
// Transforms operate on synthesized buffers without re-running the wave
// generator:
//
//	combined, err := synth.Mix(toneA, toneB)
//	longer, err := synth.StretchPitch(tone, 2)
//	joined, err := synth.Splice(toneA, toneB, 0)
//	synth.ScaleVolume(tone.Samples, 0.5)
//
// Mix pads shorter inputs with zeros up to the longest one. ScaleVolume
// leaves the final sample untouched and does not clamp. Transforms that
// change a buffer's length create a new clip; clips are fixed-capacity by
// contract.
//
// # Error Handling
//
// All failures are sentinel errors surfaced synchronously to the caller:
// ErrInvalidDuration, ErrUnsupportedWave, ErrNoClip, ErrIndexOutOfRange,
// ErrInvalidParameter and friends. No operation retries internally, and a
// failed call never leaves a partially written clip behind.
//
// # Concurrency
//
// Every operation is a plain synchronous computation over in-memory
// slices. A descriptor belongs to one call chain at a time; the package
// takes no locks.
package synth
