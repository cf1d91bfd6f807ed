// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"io"
	"sync"

	"github.com/toneforge/toneforge/synth"
)

// Decoder loads an encoded audio stream fully into a sound descriptor.
// Decoded sounds are mono with Frequency 0 (unknown), their duration
// derived from the sample count, and a populated clip, so every transform
// applies to them directly.
type Decoder interface {
	Decode(r io.Reader) (*synth.Sound, error)
}

// Registry for decoders by format key (e.g. "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// DownmixMono averages interleaved multi-channel samples into one channel.
// Mono input is returned as-is.
func DownmixMono(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}

	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	inv := 1.0 / float64(channels)
	for f := range frames {
		sum := 0.0
		for c := range channels {
			sum += interleaved[f*channels+c]
		}
		mono[f] = sum * inv
	}
	return mono
}
