// SPDX-License-Identifier: EPL-2.0

// Package toneforge generates and transforms raw digital-audio sample
// buffers: periodic waveform synthesis, volume scaling, additive mixing,
// repeat-based pitch/tempo stretching, and splicing one buffer into
// another.
//
// # Quick Start
//
// The simplest flow synthesizes a tone and writes it out as WAV:
//
//	eng := synth.NewEngine(key.Default())
//	tone, err := eng.CreateTone(synth.Sound{
//	    Frequency:    440,
//	    Wave:         synth.WaveSine,
//	    SampleRate:   44100,
//	    DurationSecs: 1,
//	})
//	if err != nil {
//	    // Handle error
//	}
//
//	file, _ := os.Create("tone.wav")
//	err = toneforge.RenderWAV(file, tone)
//
// # Package Layout
//
// The core lives in the synth subpackage: the wave generator, the
// synthesis engine and the buffer transforms. Around it:
//   - clip holds the fixed-capacity PCM buffer asset backing each sound
//   - key holds the piano key table, loadable from TOML configuration
//   - formats/* decode WAV, MP3, Ogg Vorbis and AIFF into sound
//     descriptors and encode WAV back out
//   - player plays completed descriptors through oto
//
// # Piano Key Sequences
//
// A single buffer can step through several keys in order:
//
//	seq, err := toneforge.SynthesizeKeys(eng, synth.Sound{
//	    Frequency: 440, Wave: synth.WaveSine,
//	    SampleRate: 44100, DurationSecs: 2,
//	}, key.C, key.E, key.G)
//
// # Transforms
//
// Transforms combine or rework already-synthesized buffers:
//
//	chord, err := synth.Mix(toneA, toneB, toneC)
//	slower, err := synth.StretchPitch(tone, 2)
//	joined, err := synth.Splice(toneA, toneB, 0)
//
// # Sample Format
//
// Samples are float64 in [-1, 1]. Synthesis attenuates by a headroom
// factor of 0.25 so additive mixing has room before clipping; transforms
// never clamp, leaving out-of-range handling to encoders and playback.
package toneforge
