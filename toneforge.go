// SPDX-License-Identifier: EPL-2.0

package toneforge

import (
	"fmt"
	"io"

	"github.com/toneforge/toneforge/formats/wav"
	"github.com/toneforge/toneforge/key"
	"github.com/toneforge/toneforge/synth"
	"github.com/toneforge/toneforge/utils"
)

// RenderWAV is a high-level convenience function that converts a sound's
// samples to 16-bit PCM and writes a complete mono WAV file to w.
//
// Samples are clamped to [-1, 1] during conversion; synthesized sounds
// stay well inside that range thanks to headroom, but volume-scaled or
// mixed buffers may exceed it and get clipped here.
//
// Example:
//
//	eng := synth.NewEngine(key.Default())
//	tone, _ := eng.CreateTone(synth.Sound{
//	    Frequency: 440, SampleRate: 8000, DurationSecs: 1, Wave: synth.WaveSine,
//	})
//	file, _ := os.Create("tone.wav")
//	err := toneforge.RenderWAV(file, tone)
func RenderWAV(w io.Writer, s *synth.Sound) error {
	if len(s.Samples) == 0 {
		return synth.ErrNoSamples
	}

	pcm16 := utils.FloatsToInt16(s.Samples)
	if err := wav.WritePCM16(w, s.SampleRate, pcm16); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// SynthesizeKeys builds one continuous buffer playing each key in order,
// using src for rate, duration and canvas frequency. Thin wrapper over
// Engine.FromKeys for callers that hold keys as a variadic list.
func SynthesizeKeys(eng *synth.Engine, src synth.Sound, keys ...key.Key) (*synth.Sound, error) {
	return eng.FromKeys(src, keys)
}
