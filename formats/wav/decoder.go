// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/toneforge/toneforge/formats"
	"github.com/toneforge/toneforge/synth"
)

// Decoder loads PCM WAV data into a sound descriptor.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*synth.Sound, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}
	scale := normScale(bitDepth)

	interleaved := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		interleaved[i] = float64(v) / scale
	}

	mono := formats.DownmixMono(interleaved, buf.Format.NumChannels)
	snd, err := synth.NewBufferedSound(mono, buf.Format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return snd, nil
}

// normScale returns the divisor that maps signed PCM of the given bit
// depth into [-1, 1).
func normScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
