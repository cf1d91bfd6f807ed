// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/toneforge/toneforge/formats"
	"github.com/toneforge/toneforge/synth"
)

// Decoder loads AIFF data into a sound descriptor.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*synth.Sound, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff data: %w", err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	scale := normScale(int(dec.BitDepth))
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
