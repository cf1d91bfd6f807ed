// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV audio into sound descriptors and encodes
// descriptors back to WAV. It uses the github.com/go-audio library for
// robust WAV file handling.
//
// # Decoding
//
//	dec := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	snd, err := dec.Decode(file)
//
// The decoder loads the full file, normalizes PCM to float64 in [-1, 1]
// according to the source bit depth, averages multi-channel audio down to
// mono, and returns a *synth.Sound with a written clip.
//
// # Encoding
//
// Encode targets seekable writers (files) through the go-audio encoder:
//
//	file, _ := os.Create("out.wav")
//	err := wav.Encode(file, snd)
//
// WritePCM16 serves plain writers (network streams, bytes.Buffer) with a
// hand-built canonical 44-byte header:
//
//	err := wav.WritePCM16(buf, 8000, pcm16)
package wav
