// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into sound descriptors using
// github.com/go-audio/aiff.
//
//	dec := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	snd, err := dec.Decode(file)
//
// PCM is normalized to float64 by the source bit depth, multi-channel
// audio is averaged down to mono, and the result carries a written clip.
package aiff
