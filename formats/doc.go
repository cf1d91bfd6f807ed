// SPDX-License-Identifier: EPL-2.0

// Package formats defines how encoded audio enters and leaves the sound
// descriptor world.
//
// Each subpackage decodes one container format into a *synth.Sound so
// existing recordings can be mixed with or spliced into synthesized
// buffers:
//   - WAV (PCM 16-bit) via formats/wav, which also encodes
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// # Registry
//
// The registry allows dynamic decoder registration by format key:
//
//	reg := formats.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # Decoded Sounds
//
// Multi-channel input is averaged down to mono. The descriptor's
// Frequency is 0 since the fundamental of arbitrary audio is unknown;
// DurationSecs and SampleLength follow from the decoded sample count and
// rate, and the clip is created and written before the decoder returns.
package formats
