// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/toneforge/toneforge/internal/soundtest"
	"github.com/toneforge/toneforge/synth"
)

func TestWritePCM16_Header(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	samples := []int16{100, -100, 200, -200}
	if err := WritePCM16(buf, 8000, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("output size = %d, want %d", len(data), 44+len(samples)*2)
	}

	checkTag := func(off int, want string) {
		if string(data[off:off+4]) != want {
			t.Errorf("bytes at %d = %q, want %q", off, data[off:off+4], want)
		}
	}
	checkTag(0, "RIFF")
	checkTag(8, "WAVE")
	checkTag(12, "fmt ")
	checkTag(36, "data")

	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if channels := binary.LittleEndian.Uint16(data[22:24]); channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Errorf("bits per sample = %d, want 16", bits)
	}
	if size := binary.LittleEndian.Uint32(data[40:44]); size != 8 {
		t.Errorf("data size = %d, want 8", size)
	}
}

func TestWritePCM16_SampleData(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	samples := []int16{1000, -1000}
	if err := WritePCM16(buf, 8000, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	if got := int16(binary.LittleEndian.Uint16(data[0:2])); got != 1000 {
		t.Errorf("sample 0 = %d, want 1000", got)
	}
	if got := int16(binary.LittleEndian.Uint16(data[2:4])); got != -1000 {
		t.Errorf("sample 1 = %d, want -1000", got)
	}
}

func TestWritePCM16_Empty(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WritePCM16(buf, 8000, nil); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	if buf.Len() != 44 {
		t.Errorf("empty write size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWritePCM16_LargeBuffer(t *testing.T) {
	t.Parallel()

	// Spans multiple write chunks.
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	buf := new(bytes.Buffer)
	if err := WritePCM16(buf, 44100, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	if buf.Len() != 44+len(samples)*2 {
		t.Errorf("output size = %d, want %d", buf.Len(), 44+len(samples)*2)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	snd := soundtest.NewSound(soundtest.Sine(440, 8000, 160), 8000)

	path := filepath.Join(t.TempDir(), "tone.wav")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	if err := Encode(file, snd); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopening file: %v", err)
	}
	defer in.Close()

	got, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", got.SampleRate)
	}
	if got.SampleLength != 160 {
		t.Errorf("SampleLength = %d, want 160", got.SampleLength)
	}
	for i, v := range got.Samples {
		if !soundtest.ApproxEqual(v, snd.Samples[i], 1e-3) {
			t.Fatalf("Samples[%d] = %v, want ≈%v", i, v, snd.Samples[i])
		}
	}
}

func TestEncode_NoSamples(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer file.Close()

	if err := Encode(file, &synth.Sound{SampleRate: 8000}); !errors.Is(err, synth.ErrNoSamples) {
		t.Errorf("Encode() error = %v, want synth.ErrNoSamples", err)
	}
}
