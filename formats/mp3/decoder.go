// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/toneforge/toneforge/formats"
	"github.com/toneforge/toneforge/synth"
	"github.com/toneforge/toneforge/utils"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder loads MP3 data into a sound descriptor.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*synth.Sound, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return decode(dec)
}

func decode(dec mp3Reader) (*synth.Sound, error) {
	// go-mp3 always outputs interleaved stereo 16-bit little-endian PCM.
	const channels = 2

	raw, err := io.ReadAll(readerFunc(dec.Read))
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 data: %w", err)
	}

	samples := len(raw) / 2
	interleaved := make([]float64, samples)
	for i := range samples {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		interleaved[i] = utils.Int16ToFloat(v)
	}

	mono := formats.DownmixMono(interleaved, channels)
	snd, err := synth.NewBufferedSound(mono, dec.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return snd, nil
}

// readerFunc adapts a Read method to io.Reader.
type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
