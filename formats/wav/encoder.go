// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/toneforge/toneforge/synth"
	"github.com/toneforge/toneforge/utils"
)

// Encode writes the sound's samples as a mono 16-bit PCM WAV file using
// the go-audio encoder. The writer must support seeking so the header can
// be finalized; for plain writers use WritePCM16.
func Encode(ws io.WriteSeeker, s *synth.Sound) error {
	if len(s.Samples) == 0 {
		return synth.ErrNoSamples
	}

	enc := gowav.NewEncoder(ws, s.SampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Data:           make([]int, len(s.Samples)),
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: s.SampleRate},
		SourceBitDepth: 16,
	}
	for i, v := range s.Samples {
		buf.Data[i] = int(utils.FloatToInt16(v))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav data: %w", err)
	}
	return nil
}

// WritePCM16 writes a mono 16-bit PCM WAV at sampleRate to any io.Writer,
// building the 44-byte canonical header by hand. samples must be int16 PCM.
func WritePCM16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)

	dataSize := uint32(len(samples) * 2)
	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*numChannels*bitsPerSample/8))
	binary.LittleEndian.PutUint16(header[32:34], numChannels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(samples) == 0 {
		return nil
	}

	// Chunked writes keep allocations bounded on large buffers.
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, v := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(v))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
