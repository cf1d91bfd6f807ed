// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"github.com/go-audio/audio"
)

// Clip is a fixed-capacity PCM buffer backing a synthesized sound.
// Capacity is set at creation and never changes; callers that need a
// different length must create a new Clip.
type Clip struct {
	buf       *audio.FloatBuffer
	length    int
	streaming bool
}

// New allocates a clip holding length sample frames per channel at the
// given sample rate. The core only ever creates mono, non-streaming clips;
// the type itself accepts any positive channel count.
func New(length, channels, sampleRate int, streaming bool) (*Clip, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return &Clip{
		buf: &audio.FloatBuffer{
			Data: make([]float64, length*channels),
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
		},
		length:    length,
		streaming: streaming,
	}, nil
}

// Len returns the clip capacity in sample frames per channel.
func (c *Clip) Len() int { return c.length }

// Channels returns the channel count.
func (c *Clip) Channels() int { return c.buf.Format.NumChannels }

// SampleRate returns the sample rate in Hz.
func (c *Clip) SampleRate() int { return c.buf.Format.SampleRate }

// Streaming reports whether the clip was created for streaming use.
func (c *Clip) Streaming() bool { return c.streaming }

// SetData writes samples into the clip starting at offset.
// Data past the clip capacity is silently dropped; a short samples slice
// leaves the remaining contents untouched. Offset must lie within the
// clip or ErrOffsetOutOfRange is returned.
func (c *Clip) SetData(samples []float64, offset int) error {
	if offset < 0 || offset >= len(c.buf.Data) {
		return ErrOffsetOutOfRange
	}

	copy(c.buf.Data[offset:], samples)
	return nil
}

// GetData reads clip contents starting at offset into the given slice,
// stopping at whichever of the two ends first.
func (c *Clip) GetData(into []float64, offset int) error {
	if offset < 0 || offset >= len(c.buf.Data) {
		return ErrOffsetOutOfRange
	}

	copy(into, c.buf.Data[offset:])
	return nil
}

// Data returns the raw sample storage. Mutations are visible to every
// holder of the clip.
func (c *Clip) Data() []float64 { return c.buf.Data }

// Buffer exposes the underlying go-audio buffer for encoders and
// playback collaborators.
func (c *Clip) Buffer() *audio.FloatBuffer { return c.buf }
