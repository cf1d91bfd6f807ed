// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/toneforge/toneforge/formats"
	"github.com/toneforge/toneforge/synth"
)

// Decoder loads Ogg Vorbis data into a sound descriptor.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*synth.Sound, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis data: %w", err)
	}
	return fromInterleaved(data, format.Channels, format.SampleRate)
}

// fromInterleaved converts decoded float32 frames into a mono sound.
func fromInterleaved(data []float32, channels, sampleRate int) (*synth.Sound, error) {
	interleaved := make([]float64, len(data))
	for i, v := range data {
		interleaved[i] = float64(v)
	}

	mono := formats.DownmixMono(interleaved, channels)
	snd, err := synth.NewBufferedSound(mono, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return snd, nil
}
